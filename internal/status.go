package internal

import (
	"strings"

	"github.com/AlvinMunny27/Payizi-SA-Beta/internal/model"
)

type statusInfo struct {
	progress int
	class    string
	step     int
}

// statusMap is the single source of truth for the progress visualization.
// The vocabulary is not closed; anything missing here falls back to
// defaultStatus.
var statusMap = map[string]statusInfo{
	model.StatusPending:           {progress: 20, class: model.ColorWarning, step: 1},
	model.StatusPendingPayment:    {progress: 20, class: model.ColorWarning, step: 1},
	model.StatusPaymentReceived:   {progress: 40, class: model.ColorInfo, step: 2},
	model.StatusPaid:              {progress: 40, class: model.ColorInfo, step: 2},
	model.StatusPaymentConfirmed:  {progress: 60, class: model.ColorPrimary, step: 3},
	model.StatusProcessing:        {progress: 60, class: model.ColorPrimary, step: 3},
	model.StatusSentToBeneficiary: {progress: 80, class: model.ColorSuccess, step: 4},
	model.StatusCompleted:         {progress: 100, class: model.ColorSuccess, step: 5},
	model.StatusCancelled:         {progress: 0, class: model.ColorDanger, step: 0},
	model.StatusFailed:            {progress: 20, class: model.ColorDanger, step: 1},
}

var defaultStatus = statusInfo{progress: 0, class: model.ColorNeutral, step: 0}

// ResolveStatus maps a raw status string to its DisplayState. Lookup is
// case-insensitive and whitespace-tolerant; the label keeps the caller's
// casing. Unknown statuses resolve to the default row, never an error.
func ResolveStatus(status string) model.DisplayState {
	label := strings.TrimSpace(status)

	info, ok := statusMap[strings.ToLower(label)]
	if !ok {
		info = defaultStatus
	}

	return model.DisplayState{
		ProgressPercent: info.progress,
		ColorClass:      info.class,
		TimelineStep:    info.step,
		Label:           label,
	}
}

// IsTerminalStatus reports whether a status ends the order lifecycle.
// Auto-refresh stops once the tracked order reaches one of these.
func IsTerminalStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case model.StatusCompleted, model.StatusCancelled, model.StatusFailed:
		return true
	}
	return false
}
