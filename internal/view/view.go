package view

// View writes one part of the output. Write failures are returned, since a
// line-emitting command has no way to recover from a broken output stream.
type View interface {
	Render() error
}
