package roster

// Classify labels a normalized interval as a day or night shift.
//
// Any interval spanning two calendar days is a night shift. Otherwise
// the start hour decides: before 06:00 or from 20:00 onward is night,
// while a start within working hours counts as day only when the shift
// also ends by 22:00. The boundary is deliberately asymmetric so that
// a 21:00 start classifies as night even without crossing midnight.
func Classify(iv Interval) ShiftType {
	sy, sm, sd := iv.Start.Date()
	ey, em, ed := iv.End.Date()
	if sy != ey || sm != em || sd != ed {
		return ShiftTypeNight
	}

	startHour := iv.Start.Hour()
	if startHour < 6 || startHour >= 20 {
		return ShiftTypeNight
	}
	if startHour < 22 && iv.End.Hour() <= 22 {
		return ShiftTypeDay
	}
	return ShiftTypeUnknown
}
