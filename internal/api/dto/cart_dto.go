package dto

// CartAddRequest adds one unit of an item/size pair.
type CartAddRequest struct {
	ItemID string `json:"itemId"`
	Size   string `json:"size"`
}

// CartUpdateRequest overwrites the quantity of an existing pair. Quantity is a
// pointer so an omitted field is distinguishable from an explicit zero.
type CartUpdateRequest struct {
	ItemID   string `json:"itemId"`
	Size     string `json:"size"`
	Quantity *int   `json:"quantity"`
}
