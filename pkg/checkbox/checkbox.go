package checkbox

// Checkbox is a boolean completion record for one activity on one calendar
// day. There is at most one record per (activity, date) pair.
type Checkbox struct {
	ID         int
	ActivityID int
	// Date is the calendar day (YYYY-MM-DD) the record belongs to.
	Date      string
	IsChecked bool
}
