// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Event is a telemetry event name.
type Event string

const (
	// EventFailedToDownloadInitialDataSets fires when the very first download
	// of a dataset fails because the device is offline.
	EventFailedToDownloadInitialDataSets Event = "failedToDownloadInitialDataSets"
	// EventUpdateTaskFailed48h fires when updates of a data kind keep failing
	// and the last success is older than 48 hours.
	EventUpdateTaskFailed48h Event = "updateTaskFailed48h"
)

// Event parameter names.
const (
	EventParamCategory = "category"
	EventParamType     = "type"
	EventParamError    = "error"
)
