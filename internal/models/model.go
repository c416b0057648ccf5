package models

import (
	"auction-etl/internal/etlerrors"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ColumnSeparator delimits the fields of every output row
const ColumnSeparator = "|"

// EmptySpot is the placeholder written for unknown optional fields
const EmptySpot = ""

// Field is a scalar JSON value that remembers whether it was present and whether it was null.
// Strings are kept as-is, numbers keep their literal text.
type Field struct {
	present bool
	null    bool
	value   string
}

// NewField returns a present, non-null field holding value
func NewField(value string) Field {
	return Field{present: true, value: value}
}

// UnmarshalJSON is only called when the key exists, so every decoded field is present.
func (f *Field) UnmarshalJSON(data []byte) error {
	f.present = true
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		f.null = true
		f.value = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f.value = s
		return nil
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		f.value = string(data)
		return nil
	default:
		return fmt.Errorf("%w: %s", etlerrors.ErrInvalidField, string(data))
	}
}

// Present reports whether the key appeared in the document
func (f Field) Present() bool { return f.present }

// Null reports whether the key appeared with a JSON null
func (f Field) Null() bool { return f.null }

// Value reports whether the field carries a value, and returns it
func (f Field) Value() (string, bool) {
	return f.value, f.present && !f.null
}

// Required returns the value or ErrMissingField naming the field
func (f Field) Required(name string) (string, error) {
	v, ok := f.Value()
	if !ok {
		return "", fmt.Errorf("%s: %w", name, etlerrors.ErrMissingField)
	}
	return v, nil
}

// OrEmpty returns the value, or the empty placeholder when absent or null
func (f Field) OrEmpty() string {
	v, _ := f.Value()
	return v
}

// object is one decoded JSON object keyed by its exact member names.
// Input keys are case-sensitive: "items" is not "Items".
type object map[string]json.RawMessage

func decodeObject(data []byte) (object, error) {
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// field fills f when key is a member of the object
func (o object) field(key string, f *Field) error {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	if err := f.UnmarshalJSON(raw); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// into decodes the member key into dst when it is present
func (o object) into(key string, dst any) error {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// Document is one input file
type Document struct {
	Items *[]Item
}

func (d *Document) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*d = Document{}
	return obj.into("Items", &d.Items)
}

// Seller is the listing owner as embedded in an item
type Seller struct {
	UserID Field
	Rating Field
}

func (s *Seller) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*s = Seller{}
	return errors.Join(
		obj.field("UserID", &s.UserID),
		obj.field("Rating", &s.Rating),
	)
}

// Item represents one auction listing
type Item struct {
	ItemID       Field
	Name         Field
	Category     *[]string
	Currently    Field
	BuyPrice     Field
	FirstBid     Field
	NumberOfBids Field
	Bids         BidList
	Location     Field
	Country      Field
	Started      Field
	Ends         Field
	Seller       *Seller
	Description  Field
}

func (it *Item) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*it = Item{}
	return errors.Join(
		obj.field("ItemID", &it.ItemID),
		obj.field("Name", &it.Name),
		obj.into("Category", &it.Category),
		obj.field("Currently", &it.Currently),
		obj.field("Buy_Price", &it.BuyPrice),
		obj.field("First_Bid", &it.FirstBid),
		obj.field("Number_of_Bids", &it.NumberOfBids),
		obj.into("Bids", &it.Bids),
		obj.field("Location", &it.Location),
		obj.field("Country", &it.Country),
		obj.field("Started", &it.Started),
		obj.field("Ends", &it.Ends),
		obj.into("Seller", &it.Seller),
		obj.field("Description", &it.Description),
	)
}

// Bidder is a user as seen on a bid; location and country are optional
type Bidder struct {
	UserID   Field
	Rating   Field
	Location Field
	Country  Field
}

func (b *Bidder) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*b = Bidder{}
	return errors.Join(
		obj.field("UserID", &b.UserID),
		obj.field("Rating", &b.Rating),
		obj.field("Location", &b.Location),
		obj.field("Country", &b.Country),
	)
}

// Bid represents a single bid on a listing
type Bid struct {
	Bidder *Bidder
	Time   Field
	Amount Field
}

func (b *Bid) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*b = Bid{}
	return errors.Join(
		obj.into("Bidder", &b.Bidder),
		obj.field("Time", &b.Time),
		obj.field("Amount", &b.Amount),
	)
}

// BidEnvelope wraps each element of the Bids array
type BidEnvelope struct {
	Bid *Bid
}

func (e *BidEnvelope) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*e = BidEnvelope{}
	return obj.into("Bid", &e.Bid)
}

// BidList distinguishes a missing Bids key from a null one
type BidList struct {
	present bool
	Bids    []BidEnvelope
}

func (l *BidList) UnmarshalJSON(data []byte) error {
	l.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		l.Bids = nil
		return nil
	}
	return json.Unmarshal(data, &l.Bids)
}

// Present reports whether the Bids key appeared in the item
func (l BidList) Present() bool { return l.present }

// NewBidList returns a present bid list
func NewBidList(bids ...BidEnvelope) BidList {
	return BidList{present: true, Bids: bids}
}

// User is one user directory entry
type User struct {
	UserID   string `json:"user_id"`
	Rating   string `json:"rating"`
	Location string `json:"location"`
	Country  string `json:"country"`
}

// ItemRow is one line of items.dat
type ItemRow struct {
	ItemID       string
	SellerID     string
	Name         string
	Description  string
	Currently    string
	BuyPrice     string
	FirstBid     string
	NumberOfBids string
	Location     string
	Country      string
	Started      string
	Ends         string
}

// Fields returns the columns in output order
func (r ItemRow) Fields() []string {
	return []string{
		r.ItemID, r.SellerID, r.Name, r.Description, r.Currently, r.BuyPrice,
		r.FirstBid, r.NumberOfBids, r.Location, r.Country, r.Started, r.Ends,
	}
}

// BidRow is one line of bids.dat
type BidRow struct {
	ItemID   string
	BidderID string
	Time     string
	Amount   string
}

// Fields returns the columns in output order
func (r BidRow) Fields() []string {
	return []string{r.ItemID, r.BidderID, r.Time, r.Amount}
}

// CategoryRow is one line of item_categories.dat
type CategoryRow struct {
	ItemID   string
	Category string
}

// Fields returns the columns in output order
func (r CategoryRow) Fields() []string {
	return []string{r.ItemID, r.Category}
}
