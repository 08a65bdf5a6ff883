package model

// PageMeta is offset-based pagination state as reported by the backend.
// Offsets are not stable under concurrent writes; callers refetch rather
// than patch around gaps.
type PageMeta struct {
	Page  int `json:"page"`
	Take  int `json:"take"`
	Total int `json:"total"`
}

// TransactionPage is one cached page of transactions plus its meta.
type TransactionPage struct {
	Data []Transaction `json:"data"`
	Meta PageMeta      `json:"meta"`
}

// UpdateRow replaces the row with the same UUID in place. Rows that do not
// match are untouched, as is the total. Unknown UUIDs are a no-op.
func (p *TransactionPage) UpdateRow(tx Transaction) {
	for i := range p.Data {
		if p.Data[i].UUID == tx.UUID {
			p.Data[i] = tx
			return
		}
	}
}

// RemoveRow drops the row with the given UUID and decrements the reported
// total. Unknown UUIDs are a no-op.
func (p *TransactionPage) RemoveRow(uuid string) {
	for i := range p.Data {
		if p.Data[i].UUID == uuid {
			p.Data = append(p.Data[:i], p.Data[i+1:]...)
			p.Meta.Total--
			return
		}
	}
}

// ReviewPage is one page of reviews with the backend aggregate when
// provided.
type ReviewPage struct {
	Data          []Review `json:"data"`
	Meta          PageMeta `json:"meta"`
	AverageRating float64  `json:"average_rating"`
}
