package commands

import (
	"fmt"

	"github.com/agiangrant/stackui/internal/assets"
	"github.com/agiangrant/stackui/retained"
)

// DemoState is the state of the demo application.
type DemoState struct {
	Count      int
	Subscribed bool
	Name       string
	Greeting   string
	Volume     float64
	Dialog     bool
}

// BuildDemo returns the demo's view builder. images may be nil.
func BuildDemo(images *assets.Images) func(DemoState) retained.View[DemoState] {
	return func(s DemoState) retained.View[DemoState] {
		counter := retained.HStack[DemoState]("p-0",
			retained.Button[DemoState]("+1", "").WithID("increment").OnClick(func(s *DemoState) {
				s.Count++
			}),
			retained.Button[DemoState]("Reset", "bg-gray-600 hover:bg-gray-500 active:bg-gray-700").WithID("reset").OnClick(func(s *DemoState) {
				s.Count = 0
			}),
			retained.Button[DemoState]("About", "").WithID("about").OnClick(func(s *DemoState) {
				s.Dialog = true
			}),
		)

		volume := retained.HStack[DemoState]("p-0",
			retained.Text[DemoState]("Volume", ""),
			retained.ScrollBar[DemoState](s.Volume, 0, 100, "").WithID("volume").WithStep(1).OnValueChanged(func(s *DemoState, v float64) {
				s.Volume = v
			}),
			retained.Text[DemoState](fmt.Sprintf("%3.0f", s.Volume), ""),
		)

		root := retained.VStack[DemoState]("",
			retained.Text[DemoState]("stackui", "text-white"),
			retained.Text[DemoState](fmt.Sprintf("Clicked %d times", s.Count), ""),
			counter,
			retained.Divider[DemoState](""),
			retained.CheckBox[DemoState]("Subscribe to updates", s.Subscribed, "").WithID("subscribe").OnCheck(func(s *DemoState, checked bool) {
				s.Subscribed = checked
			}),
			retained.TextBox[DemoState](s.Name, "Your name", "").WithID("name").
				OnValueChanged(func(s *DemoState, text string) { s.Name = text }).
				OnSubmit(func(s *DemoState, text string) { s.Greeting = "Hello, " + text }),
			volume,
		).WithAlignment(retained.AlignLeft)

		if s.Greeting != "" {
			root.Append(retained.Text[DemoState](s.Greeting, "text-green-300"))
		}
		if logo, ok := images.Get("logo"); ok {
			root.Append(retained.Image[DemoState](logo, "").WithID("logo").WithHoverShade(0, 0))
		}
		if s.Dialog {
			dialog := retained.VStack[DemoState]("bg-gray-800 border border-gray-600",
				retained.Text[DemoState]("A retained-mode UI engine", ""),
				retained.Button[DemoState]("Close", "").WithID("close").OnClick(func(s *DemoState) {
					s.Dialog = false
				}),
			)
			root.Append(retained.Overlay[DemoState](dialog, ""))
		}
		return root
	}
}
