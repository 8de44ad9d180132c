package entity

type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "Pending"
	InquiryContacted InquiryStatus = "Contacted"
	InquiryClosed    InquiryStatus = "Closed"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryPending, InquiryContacted, InquiryClosed:
		return true
	}
	return false
}
