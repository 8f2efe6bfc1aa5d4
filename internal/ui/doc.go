// Package ui contains the Bubble Tea program that renders a shop session
// in the terminal. The Model focuses on message orchestration; dedicated
// helpers own key handling, filtering, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled
//     by a focused function.
//   - Selection events (enter on an option, esc on a page with a
//     back-control) are dispatched through internal/ui/command: the bus
//     runs shop.Session.HandleSelect as a tea.Cmd, the recorder captures
//     what the session rendered, and the command.Result message carries
//     the captured page back into the model.
//   - The session is the single owner of navigation state; the model only
//     mirrors the page it was last asked to render, so a failed dispatch
//     leaves the screen exactly where it was.
//
// State ownership:
//   - Option-pane state (rows, cursor, filter, viewport) lives in
//     internal/ui/state.Options.
//   - Page construction and navigation live in internal/shop and are never
//     duplicated here.
package ui
