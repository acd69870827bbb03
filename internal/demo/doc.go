// Package demo implements the interactive spin button form.
//
// The form is a full-screen Bubble Tea program showing one spin button per
// preset, in the order the preset file gives. It follows the Elm
// architecture: AppModel owns the fields, routes messages to them and
// renders them inside the shared application container.
//
// # Message Routing
//
//   - Key presses go to the focused field, except tab, shift+tab, f1 and
//     ctrl+c which the form handles itself.
//   - Mouse presses are translated into the coordinates of the field under
//     the pointer. Releases and motion go to every field so a held arrow
//     button notices the pointer leaving it.
//   - Repeat and release ticks go to every field; each carries the widget
//     ID of its owner and the others ignore it.
//
// # Usage Example
//
//	reg, _ := config.LoadRegistry("")
//	app, err := demo.FromRegistry(reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
package demo
