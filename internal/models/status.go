package models

import "time"

// StatusModel reports the server clock and the size of the conversion table.
type StatusModel struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
	Categories   int    `json:"categories"`
	Units        int    `json:"units"`
}

// NewStatus creates a StatusModel for t. Time is in Unix milliseconds.
func NewStatus(t time.Time, categories, units int) StatusModel {
	return StatusModel{
		ReadableTime: t.Format(time.RFC3339),
		Time:         t.UnixNano() / int64(time.Millisecond),
		Categories:   categories,
		Units:        units,
	}
}
