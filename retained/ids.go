package retained

import "fmt"

// AssignIDs gives every widget constructed without an id one derived from
// its kind and its index in z-order ("button#3"), then checks that ids are
// unique. A duplicate is reported as an error wrapping ErrDuplicateID.
// It also rejects overlays nested inside overlays, which can only be built
// by appending to a view after the overlay was constructed.
func AssignIDs[S any](root View[S]) error {
	seen := make(map[WidgetID]int)
	index := 0
	var err error
	walk(root, func(n Node[S]) {
		switch n.kind {
		case NodeView:
			if o, ok := n.view.(*OverlayView[S]); ok {
				checkOverlay(o)
			}
		case NodeWidget:
			w := n.widget
			if w.ID() == "" {
				w.SetID(WidgetID(fmt.Sprintf("%s#%d", w.Kind(), index)))
			}
			if first, dup := seen[w.ID()]; dup && err == nil {
				err = fmt.Errorf("%w: %q at widgets %d and %d", ErrDuplicateID, w.ID(), first, index)
			}
			seen[w.ID()] = index
			index++
		}
	})
	if o, ok := root.(*OverlayView[S]); ok {
		checkOverlay(o)
	}
	return err
}

func checkOverlay[S any](o *OverlayView[S]) {
	for _, v := range ChildViews(o.content) {
		if v.Kind() == KindOverlay {
			configPanic("AssignIDs", "overlay nested inside an overlay's content")
		}
	}
}
