package view

type CompositeView struct {
	views []View
}

func NewCompositeView(views []View) *CompositeView {
	return &CompositeView{views: views}
}

func (cv *CompositeView) AddView(v View) {
	cv.views = append(cv.views, v)
}

// Render renders the views in order and stops at the first failure.
func (cv *CompositeView) Render() error {
	for _, view := range cv.views {
		if err := view.Render(); err != nil {
			return err
		}
	}
	return nil
}
