package lotlist

import "fmt"

// Summary tallies one processing run.
type Summary struct {
	RowsTotal       int
	RowsSkipped     int
	ListingsCreated int
	PhotosMatched   int
	Collisions      int
}

// PhotosMissing is the number of listings written without a photo.
func (s Summary) PhotosMissing() int {
	return s.ListingsCreated - s.PhotosMatched
}

func (s Summary) String() string {
	return fmt.Sprintf("%d listings created, %d rows skipped, %d photos matched",
		s.ListingsCreated, s.RowsSkipped, s.PhotosMatched)
}
