package response

import (
	"fmt"

	"shop-assistant-be/pkg/assistant/catalog"
)

// StockReply answers a stock question from the stock table alone.
func StockReply(c *catalog.Catalog, message string) string {
	item, ok := c.FindStock(message)
	if !ok {
		return fmt.Sprintf(c.Templates.StockUnknown, c.Phone)
	}
	if item.Quantity <= 0 {
		return fmt.Sprintf(c.Templates.StockOut, item.Name, c.Phone)
	}
	return fmt.Sprintf(c.Templates.StockAvailable, item.Name, item.Quantity, c.Phone)
}
