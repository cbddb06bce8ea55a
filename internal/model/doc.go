package model

// Package model defines domain data structures used across the app: CSV load
// tasks, header descriptors, and chart series. Structures are designed for
// direct binding in the UI and explicit state transitions.
