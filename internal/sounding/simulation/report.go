package simulation

import (
	"time"

	"isa-explorer/pkg/types"
)

type Report struct {
	Timestamp time.Time
	SimTime   time.Duration
	ProbeID   types.ProbeID
	Message   string
	IsUrgent  bool
}

func (s *Simulation) AddReport(id types.ProbeID, message string, isUrgent bool) {
	r := Report{
		Timestamp: time.Now(),
		SimTime:   time.Duration(s.SimTimeSeconds * float64(time.Second)),
		ProbeID:   id,
		Message:   message,
		IsUrgent:  isUrgent,
	}
	s.Reports = append(s.Reports, r)

	if len(s.Reports) > s.maxReportLogSize {
		s.Reports = s.Reports[len(s.Reports)-s.maxReportLogSize:]
	}
}

// RecentReports returns a copy of up to n of the newest reports, newest last.
func (s *Simulation) RecentReports(n int) []Report {
	if n <= 0 {
		return nil
	}
	if n > len(s.Reports) {
		n = len(s.Reports)
	}
	return append([]Report(nil), s.Reports[len(s.Reports)-n:]...)
}
