package domain

// Item is a piece of rentable equipment with tracked stock counts.
//
// Stock convention: InStock is the number of units currently available to
// rent, Rented is the number of units out on loan. Total owned units is
// always Rented + InStock and is invariant across checkout and return.
type Item struct {
	ID          string `json:"id" firestore:"-"`
	Name        string `json:"name" firestore:"name"`
	Category    string `json:"category" firestore:"category"`
	Subcategory string `json:"subcategory" firestore:"subcategory"`
	Location    string `json:"location" firestore:"location"`
	Rented      int64  `json:"rented" firestore:"rented"`
	InStock     int64  `json:"inStock" firestore:"inStock"`
	ImageURL    string `json:"imageUrl" firestore:"imageUrl"`
}

// TotalUnits returns the number of units owned regardless of where they are.
func (i *Item) TotalUnits() int64 {
	return i.Rented + i.InStock
}
