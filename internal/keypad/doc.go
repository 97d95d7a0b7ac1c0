// Package keypad is the boundary between the calculator core and whatever
// presents buttons to the user.
//
// A Layout arranges Buttons in rows; each Button carries the model.Event it
// emits when pressed. Layouts come from DefaultLayout or from a YAML or
// JSONC layout file (LoadLayout). A Renderer draws a layout, and a
// Controller turns button presses into calculator updates, so the core
// state and arithmetic stay independent of any UI toolkit.
package keypad
