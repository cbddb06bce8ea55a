package platform

// Package platform contains OS integration glue: filesystem helpers, file
// change watching for chart auto-reload, and revealing files in the system
// file manager.
