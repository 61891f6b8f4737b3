// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package copyright

// Outcome is the per-file result of a header update.
type Outcome int

const (
	// Unchanged means the existing header already carries the desired
	// years.
	Unchanged Outcome = iota
	// Inserted means a new header line was added.
	Inserted
	// Updated means the year expression of an existing header was
	// rewritten.
	Updated
	// NoHistory means no usable year range could be resolved, so the
	// file was left alone.
	NoHistory
	// MissingAndRequired means the file lacks a header, none could be
	// inserted, and headers are required.
	MissingAndRequired
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	case NoHistory:
		return "no history"
	case MissingAndRequired:
		return "missing required header"
	}
	return "unknown"
}

// Changed reports whether the outcome produced new file content.
func (o Outcome) Changed() bool { return o == Inserted || o == Updated }
