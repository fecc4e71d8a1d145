package appConfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"gg/internal/ext"
	"gg/internal/gitremote"
	typex "gg/type"
)

const (
	DefaultConfigFileName = ".gg.yaml"
	DefaultRoot           = "~/work"
)

// Environment variables understood by gg. They take precedence over the config file.
const (
	EnvConfig      = "GGCONFIG"
	EnvRoot        = "GGROOT"
	EnvHTTPS       = "GGHTTP"
	EnvNoAutoCd    = "GGNOAUTOCD"
	EnvDirViewer   = "GGDIRVIEWER"
	EnvProbe       = "GGPROBE"
	EnvTermProgram = "TERM_PROGRAM"
)

var VSCodeCLIPath = "/Applications/Visual Studio Code.app/Contents/Resources/app/bin/code"

type AppConfig struct {
	Root        string             `yaml:"root"`
	PreferHTTPS typex.NullableBool `yaml:"https"`
	NoAutoCd    typex.NullableBool `yaml:"noAutoCd"`
	DirViewer   *string            `yaml:"dirViewer"`
	Probe       string             `yaml:"probe"`

	insideVSCode bool
}

// Load builds the configuration once per invocation: defaults, then the YAML file, then the environment.
func Load() (*AppConfig, error) {
	configFilePath, explicit := os.LookupEnv(EnvConfig)
	if !explicit || configFilePath == "" {
		configFilePath = filepath.Join("~", DefaultConfigFileName)
		explicit = false
	}
	configFilePath, err := ext.ExpandTilde(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("could not determine home directory: %w", err)
	}

	config, err := loadConfig(configFilePath, explicit)
	if err != nil {
		return nil, err
	}
	config.applyEnv()

	if err := config.resolveRoot(); err != nil {
		return nil, err
	}
	if _, err := gitremote.NewProber(config.Probe); err != nil {
		return nil, err
	}
	return config, nil
}

// loadConfig reads the YAML file. A missing file is only an error when the user named it explicitly.
func loadConfig(configFilePath string, required bool) (*AppConfig, error) {
	var config AppConfig

	data, err := os.ReadFile(configFilePath)
	if os.IsNotExist(err) && !required {
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %v", err)
	}

	err = yaml.UnmarshalStrict(data, &config)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal config file %s: %v", configFilePath, err)
	}
	return &config, nil
}

func (c *AppConfig) applyEnv() {
	if root := os.Getenv(EnvRoot); root != "" {
		c.Root = root
	}
	if v := os.Getenv(EnvHTTPS); v != "" {
		_ = c.PreferHTTPS.Set(v)
	}
	if v := os.Getenv(EnvNoAutoCd); v != "" {
		_ = c.NoAutoCd.Set(v)
	}
	if v, ok := os.LookupEnv(EnvDirViewer); ok {
		c.DirViewer = &v
	}
	if v := os.Getenv(EnvProbe); v != "" {
		c.Probe = v
	}
	c.insideVSCode = os.Getenv(EnvTermProgram) == "vscode"
}

func (c *AppConfig) resolveRoot() error {
	root, err := ext.ExpandTilde(ext.DefaultValue(c.Root, DefaultRoot))
	if err != nil {
		return fmt.Errorf("could not expand workspace root %s: %w", c.Root, err)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving workspace root: %w", err)
	}
	c.Root = filepath.Clean(root)
	return nil
}

func (c *AppConfig) HTTPSPreferred() bool {
	return c.PreferHTTPS.Val(false)
}

// AutoCdSuppressed is true when the shell should stay where it is. Inside VS Code's terminal
// the editor already shows the repository.
func (c *AppConfig) AutoCdSuppressed() bool {
	return c.NoAutoCd.Val(false) || c.insideVSCode
}

// Viewer is the command that opens the target directory, or "" for none.
// "-" disables the viewer; with nothing configured VS Code is used when installed.
func (c *AppConfig) Viewer() string {
	if c.DirViewer != nil {
		viewer := strings.TrimSpace(*c.DirViewer)
		if viewer == "-" {
			return ""
		}
		return viewer
	}
	if VSCodeInstalled() {
		return VSCodeCLIPath
	}
	return ""
}

func VSCodeInstalled() bool {
	info, err := os.Stat(VSCodeCLIPath)
	return err == nil && !info.IsDir()
}
