// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package graph

import (
	"strings"
	"time"
)

// Status thresholds.
const (
	ExpiringWindow = 7 * 24 * time.Hour
	NewWindow      = 24 * time.Hour
)

// DocumentData is the payload of a document node.
type DocumentData struct {
	ID        string    `json:"id"`
	CustomID  string    `json:"customId,omitempty"`
	Title     string    `json:"title,omitempty"`
	Type      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Kind returns the normalized document kind used to pick an icon.
func (d *DocumentData) Kind() DocumentKind {
	switch strings.ToLower(strings.TrimSpace(d.Type)) {
	case "pdf":
		return KindPDF
	case "md", "markdown":
		return KindMarkdown
	case "doc", "docx":
		return KindWord
	case "rtf":
		return KindRTF
	case "csv":
		return KindCSV
	case "json":
		return KindJSON
	default:
		return KindText
	}
}

// DocumentKind is a normalized document type.
type DocumentKind string

// Document kinds.
const (
	KindText     DocumentKind = "text"
	KindPDF      DocumentKind = "pdf"
	KindMarkdown DocumentKind = "md"
	KindWord     DocumentKind = "doc"
	KindRTF      DocumentKind = "rtf"
	KindCSV      DocumentKind = "csv"
	KindJSON     DocumentKind = "json"
)

// MemoryData is the payload of a memory node.
type MemoryData struct {
	ID             string     `json:"id"`
	Memory         string     `json:"memory,omitempty"`
	SpaceID        string     `json:"spaceId,omitempty"`
	Version        int        `json:"version,omitempty"`
	IsLatest       bool       `json:"isLatest"`
	ParentMemoryID string     `json:"parentMemoryId,omitempty"`
	IsForgotten    bool       `json:"isForgotten,omitempty"`
	ForgetAfter    *time.Time `json:"forgetAfter,omitempty"`
	ForgetReason   string     `json:"forgetReason,omitempty"`
	CreatedAt      time.Time  `json:"createdAt,omitzero"`
	UpdatedAt      time.Time  `json:"updatedAt,omitzero"`
}

// MemoryStatus is the display status of a memory. Higher values take
// precedence when several apply.
type MemoryStatus uint8

// Memory statuses in ascending precedence.
const (
	StatusDefault MemoryStatus = iota
	StatusNew
	StatusExpiring
	StatusForgotten
)

func (s MemoryStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusExpiring:
		return "expiring"
	case StatusForgotten:
		return "forgotten"
	default:
		return "default"
	}
}

// Forgotten reports whether the memory is flagged forgotten or its expiry
// has passed.
func (m *MemoryData) Forgotten(now time.Time) bool {
	return m.IsForgotten || (m.ForgetAfter != nil && m.ForgetAfter.Before(now))
}

// ExpiringSoon reports whether a live memory expires within ExpiringWindow.
func (m *MemoryData) ExpiringSoon(now time.Time) bool {
	return m.ForgetAfter != nil && !m.Forgotten(now) && m.ForgetAfter.Sub(now) < ExpiringWindow
}

// IsNew reports whether a live memory was created within NewWindow.
func (m *MemoryData) IsNew(now time.Time) bool {
	return !m.Forgotten(now) && m.CreatedAt.After(now.Add(-NewWindow))
}

// Status returns the highest-precedence status at now.
func (m *MemoryData) Status(now time.Time) MemoryStatus {
	switch {
	case m.Forgotten(now):
		return StatusForgotten
	case m.ExpiringSoon(now):
		return StatusExpiring
	case m.IsNew(now):
		return StatusNew
	default:
		return StatusDefault
	}
}
