package tui

import "github.com/moyu-x/file-organizer/internal"

type organizeDoneMsg struct {
	report *internal.Report
}

type undoDoneMsg struct {
	result *internal.UndoResult
}

type dedupDoneMsg struct {
	report *internal.DedupReport
}

type errMsg error
