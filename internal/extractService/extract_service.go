package extract

import (
	"auction-etl/internal/etlerrors"
	model "auction-etl/internal/models"
	"auction-etl/internal/normalize"
	"auction-etl/internal/repository"
	"auction-etl/internal/tables"
	"auction-etl/utils"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// FileReport summarizes the rows produced from one input file
type FileReport struct {
	Path            string          `json:"path"`
	Items           int             `json:"items"`
	Bids            int             `json:"bids"`
	Categories      int             `json:"categories"`
	Users           int             `json:"users"`
	BidVolume       decimal.Decimal `json:"bid_volume"`
	UnparsedAmounts int             `json:"unparsed_amounts"`
}

// Extractor flattens listing documents into the output tables and the user directory
type Extractor struct {
	layout tables.Layout
	dir    repository.UserDirectory
}

// NewExtractor creates an Extractor writing under layout and merging users into dir
func NewExtractor(layout tables.Layout, dir repository.UserDirectory) *Extractor {
	return &Extractor{
		layout: layout,
		dir:    dir,
	}
}

// DecodeDocument parses an input file body
func DecodeDocument(data []byte) (model.Document, error) {
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Document{}, fmt.Errorf("extract: decode document: %w", err)
	}
	if doc.Items == nil {
		return model.Document{}, fmt.Errorf("extract: %w", etlerrors.ErrMissingItems)
	}
	return doc, nil
}

// ExtractFile appends the rows of one JSON file to the tables and then rewrites users.dat.
// Rows written before a failure stay on disk; users.dat is left untouched on failure.
func (e *Extractor) ExtractFile(path string) (FileReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileReport{Path: path}, fmt.Errorf("extract: read %s: %w", path, err)
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return FileReport{Path: path}, fmt.Errorf("extract %s: %w", path, err)
	}

	sink, err := e.layout.OpenAppend()
	if err != nil {
		return FileReport{Path: path}, fmt.Errorf("extract %s: %w", path, err)
	}

	report, extractErr := e.ExtractDocument(doc, sink)
	report.Path = path
	closeErr := sink.Close()
	if extractErr != nil {
		return report, fmt.Errorf("extract %s: %w", path, extractErr)
	}
	if closeErr != nil {
		return report, fmt.Errorf("extract %s: %w", path, closeErr)
	}

	if err := repository.SaveDirectory(e.layout.UsersPath(), e.dir); err != nil {
		return report, fmt.Errorf("extract %s: %w", path, err)
	}

	utils.Info("file extracted", map[string]any{
		"path":       path,
		"items":      report.Items,
		"bids":       report.Bids,
		"categories": report.Categories,
		"users":      report.Users,
		"bid_volume": report.BidVolume.String(),
	})
	return report, nil
}

// ExtractDocument writes the rows for every item of doc to sink, in document order
func (e *Extractor) ExtractDocument(doc model.Document, sink tables.RowSink) (FileReport, error) {
	report := FileReport{BidVolume: decimal.Zero}
	if doc.Items == nil {
		return report, etlerrors.ErrMissingItems
	}

	for i, item := range *doc.Items {
		if err := e.extractItem(item, sink, &report); err != nil {
			report.Users = e.dir.Len()
			return report, fmt.Errorf("item %d: %w", i, err)
		}
	}

	report.Users = e.dir.Len()
	return report, nil
}

func (e *Extractor) extractItem(item model.Item, sink tables.RowSink, report *FileReport) error {
	row, err := itemRow(item)
	if err != nil {
		return err
	}

	if item.Category == nil {
		return fmt.Errorf("Category: %w", etlerrors.ErrMissingField)
	}
	for _, category := range *item.Category {
		if err := sink.WriteCategory(model.CategoryRow{ItemID: row.ItemID, Category: category}); err != nil {
			return err
		}
		report.Categories++
	}

	if !item.Bids.Present() {
		return fmt.Errorf("Bids: %w", etlerrors.ErrMissingField)
	}
	for j, envelope := range item.Bids.Bids {
		bid, err := bidRow(row.ItemID, envelope)
		if err != nil {
			return fmt.Errorf("bid %d: %w", j, err)
		}
		if err := sink.WriteBid(bid); err != nil {
			return err
		}
		report.Bids++
		if amount, err := decimal.NewFromString(bid.Amount); err == nil {
			report.BidVolume = report.BidVolume.Add(amount)
		} else {
			report.UnparsedAmounts++
			utils.Debug("bid amount not numeric", map[string]any{"item_id": row.ItemID, "amount": bid.Amount})
		}
		if err := e.recordBidder(envelope.Bid.Bidder); err != nil {
			return fmt.Errorf("bid %d: %w", j, err)
		}
	}

	if !e.dir.Contains(row.SellerID) {
		rating, err := item.Seller.Rating.Required("Seller.Rating")
		if err != nil {
			return err
		}
		e.dir.InsertSeller(model.User{
			UserID:   row.SellerID,
			Rating:   rating,
			Location: model.EmptySpot,
			Country:  model.EmptySpot,
		})
	}

	if err := sink.WriteItem(row); err != nil {
		return err
	}
	report.Items++
	return nil
}

// bidRow builds the bids.dat line; the bidder's rating is not needed yet
func bidRow(itemID string, envelope model.BidEnvelope) (model.BidRow, error) {
	bid := envelope.Bid
	if bid == nil {
		return model.BidRow{}, fmt.Errorf("Bid: %w", etlerrors.ErrMissingField)
	}
	if bid.Bidder == nil {
		return model.BidRow{}, fmt.Errorf("Bidder: %w", etlerrors.ErrMissingField)
	}

	r := fieldReader{}
	bidderID := r.required(bid.Bidder.UserID, "Bidder.UserID")
	bidTime := r.required(bid.Time, "Time")
	amount := r.required(bid.Amount, "Amount")
	if r.err != nil {
		return model.BidRow{}, r.err
	}

	return model.BidRow{
		ItemID:   itemID,
		BidderID: bidderID,
		Time:     normalize.Timestamp(bidTime),
		Amount:   normalize.Dollar(amount),
	}, nil
}

// recordBidder replaces the bidder's directory entry
func (e *Extractor) recordBidder(bidder *model.Bidder) error {
	rating, err := bidder.Rating.Required("Bidder.Rating")
	if err != nil {
		return err
	}
	e.dir.UpsertBidder(model.User{
		UserID:   bidder.UserID.OrEmpty(),
		Rating:   rating,
		Location: bidder.Location.OrEmpty(),
		Country:  bidder.Country.OrEmpty(),
	})
	return nil
}

// itemRow reads the item's columns; Description may be null and Buy_Price may be missing
func itemRow(item model.Item) (model.ItemRow, error) {
	if item.Seller == nil {
		return model.ItemRow{}, fmt.Errorf("Seller: %w", etlerrors.ErrMissingField)
	}

	r := fieldReader{}
	row := model.ItemRow{
		ItemID:   r.required(item.ItemID, "ItemID"),
		SellerID: r.required(item.Seller.UserID, "Seller.UserID"),
		Name:     r.required(item.Name, "Name"),
	}
	if !item.Description.Present() {
		r.fail("Description")
	}
	row.Description = item.Description.OrEmpty()
	row.Currently = normalize.Dollar(r.required(item.Currently, "Currently"))
	row.BuyPrice = normalize.Dollar(item.BuyPrice.OrEmpty())
	row.FirstBid = normalize.Dollar(r.required(item.FirstBid, "First_Bid"))
	row.NumberOfBids = r.required(item.NumberOfBids, "Number_of_Bids")
	row.Location = r.required(item.Location, "Location")
	row.Country = r.required(item.Country, "Country")
	row.Started = normalize.Timestamp(r.required(item.Started, "Started"))
	row.Ends = normalize.Timestamp(r.required(item.Ends, "Ends"))

	if r.err != nil {
		return model.ItemRow{}, r.err
	}
	return row, nil
}

// fieldReader keeps the first missing-field error so rows can be read in one pass
type fieldReader struct {
	err error
}

func (r *fieldReader) required(f model.Field, name string) string {
	v, err := f.Required(name)
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}

func (r *fieldReader) fail(name string) {
	if r.err == nil {
		r.err = fmt.Errorf("%s: %w", name, etlerrors.ErrMissingField)
	}
}
