package model

// Package model defines the domain data structures shared by the converter:
// conversion jobs, batches and their summaries, driver events, and the
// application state owned by the main window. Structures are designed for
// direct rendering in the UI and explicit state transitions.
