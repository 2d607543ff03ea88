package document

// Kind distinguishes the two document families that share numbering and
// export mechanics.
type Kind string

const (
	KindInvoice       Kind = "invoice"
	KindPurchaseOrder Kind = "purchase_order"
)

// Prefix is the leading segment of every number of this kind.
func (k Kind) Prefix() string {
	switch k {
	case KindInvoice:
		return "INV"
	case KindPurchaseOrder:
		return "PO"
	}

	return ""
}

func (k Kind) Valid() bool {
	return k.Prefix() != ""
}
