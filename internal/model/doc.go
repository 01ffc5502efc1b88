package model

// Package model defines domain data structures used across the app: normalized
// recipes, queries issued by the user, and their status enums. Structures are
// designed for direct binding in the UI and explicit state transitions.
