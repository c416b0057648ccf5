package perftests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// generateDocument builds an input document with numItems listings drawn from numUsers users
func generateDocument(fileIndex, numItems, bidsPerItem, numUsers int) []byte {
	items := make([]map[string]any, 0, numItems)
	for i := 0; i < numItems; i++ {
		itemID := fmt.Sprintf("%d%06d", fileIndex, i)

		var bids any
		if bidsPerItem > 0 {
			list := make([]map[string]any, 0, bidsPerItem)
			for b := 0; b < bidsPerItem; b++ {
				list = append(list, map[string]any{"Bid": map[string]any{
					"Bidder": map[string]any{
						"UserID":   fmt.Sprintf("user_%d", (i*bidsPerItem+b)%numUsers),
						"Rating":   fmt.Sprint(b),
						"Location": "Somewhere",
						"Country":  "USA",
					},
					"Time":   "Dec-04-01 04:03:04",
					"Amount": fmt.Sprintf("$%d,%03d.%02d", 1+b, i%1000, b%100),
				}})
			}
			bids = list
		}

		items = append(items, map[string]any{
			"ItemID":         itemID,
			"Name":           "benchmark listing",
			"Category":       []string{"Collectibles", "Toys & Hobbies"},
			"Currently":      "$1,030.00",
			"Buy_Price":      "$2,000.00",
			"First_Bid":      "$1.00",
			"Number_of_Bids": fmt.Sprint(bidsPerItem),
			"Bids":           bids,
			"Location":       "Lancaster, PA",
			"Country":        "USA",
			"Started":        "Dec-03-01 18:10:40",
			"Ends":           "Dec-13-01 18:10:40",
			"Seller":         map[string]any{"UserID": fmt.Sprintf("seller_%d", i%numUsers), "Rating": "100"},
			"Description":    "generated",
		})
	}

	data, _ := json.Marshal(map[string]any{"Items": items})
	return data
}

// writeFiles writes numFiles generated documents and returns their paths
func writeFiles(tb testing.TB, numFiles, itemsPerFile, bidsPerItem, numUsers int) []string {
	tb.Helper()
	dir := tb.TempDir()
	paths := make([]string, 0, numFiles)
	for f := 0; f < numFiles; f++ {
		path := filepath.Join(dir, fmt.Sprintf("items-%d.json", f))
		if err := os.WriteFile(path, generateDocument(f, itemsPerFile, bidsPerItem, numUsers), 0o644); err != nil {
			tb.Fatalf("failed to write fixture: %v", err)
		}
		paths = append(paths, path)
	}
	return paths
}
