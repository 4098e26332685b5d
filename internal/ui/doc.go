// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for the video platform:
//  1. [LoginView] / [SignupView] : Authenticate against the platform
//  2. [HomeView] : Browse the paginated video catalog
//  3. [VideoDetailView] : Watch stats, like, and comment on a video
//  4. [ManageView] : Administer the catalog, including deletion
//  5. [AnalyticsView] : Platform totals and per-video performance
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Role checks run through the same authorization table the CLI uses, so a
// consumer can never reach the manage or analytics views.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
