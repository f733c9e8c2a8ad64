package catalog

type Kind string

const (
	KindSingle Kind = "single"
	KindCombo  Kind = "combo"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindSingle, KindCombo:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Tier names a catalog price column that can be copied onto promotion
// line items.
type Tier string

const (
	TierPromo     Tier = "promo"
	TierPackage5  Tier = "package5"  // 5-for-5 package
	TierPackage15 Tier = "package15" // 10-for-15 package
)

func (t Tier) IsValid() bool {
	switch t {
	case TierPromo, TierPackage5, TierPackage15:
		return true
	default:
		return false
	}
}

func NewTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", ErrInvalidTier
	}
	return t, nil
}
