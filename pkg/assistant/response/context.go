package response

import (
	"fmt"
	"strings"

	"shop-assistant-be/pkg/assistant/catalog"
	"shop-assistant-be/pkg/assistant/intent"
	"shop-assistant-be/pkg/assistant/slot"
)

// SpecificContext renders the catalog facts relevant to an intent and its slots.
// It returns "" when nothing specific applies.
func SpecificContext(c *catalog.Catalog, in intent.Intent, slots slot.Slots) string {
	var b strings.Builder

	switch in {
	case intent.ProductInquiry:
		writeProductContext(&b, c, slots)

	case intent.AccessoryInquiry:
		if slots.Accessory == "" {
			break
		}
		types := []string{"Various types"}
		if group, ok := slot.AccessoryGroup(slots.Accessory); ok && len(c.AccessoryTypes(group)) > 0 {
			types = c.AccessoryTypes(group)
		}
		fmt.Fprintf(&b, "Customer is asking about %s.\n", slots.Accessory)
		fmt.Fprintf(&b, "Available types: %s\n", strings.Join(types, ", "))
		b.WriteString("We offer warranty on all accessories.\n")

	case intent.RepairInquiry:
		if slots.Service == "" {
			break
		}
		writeRepairContext(&b, c, slots)

	case intent.LocationInquiry:
		b.WriteString("Customer is asking about our location.\n")
		fmt.Fprintf(&b, "Address: %s\n", c.Address)
		fmt.Fprintf(&b, "Landmark: %s\n", c.Landmark)

	case intent.ContactInquiry:
		b.WriteString("Customer is asking about contact information.\n")
		fmt.Fprintf(&b, "Phone numbers: %s\n", c.Phone)
		fmt.Fprintf(&b, "Business hours: %s\n", c.Hours)

	case intent.HoursInquiry:
		b.WriteString("Customer is asking about business hours.\n")
		fmt.Fprintf(&b, "We are open: %s\n", c.Hours)

	case intent.DeliveryInquiry:
		b.WriteString("Customer is asking about delivery.\n")
		fmt.Fprintf(&b, "Delivery information: %s\n", c.Delivery)
		fmt.Fprintf(&b, "Payment methods: %s\n", strings.Join(c.PaymentMethods, ", "))

	case intent.WarrantyInquiry:
		b.WriteString("Customer is asking about warranty.\n")
		b.WriteString("We provide standard warranty for all products:\n")
		for _, line := range c.Warranty {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	return b.String()
}

func writeProductContext(b *strings.Builder, c *catalog.Catalog, slots slot.Slots) {
	if slots.Brand != "" {
		models := "Various models"
		if m := c.ModelsFor(slots.Brand); len(m) > 0 {
			models = strings.Join(m, ", ")
		}
		price, ok := c.PriceRange(slots.Brand)
		if !ok {
			price = "Various prices"
		}
		fmt.Fprintf(b, "Customer is asking about %s phones.\n", slots.Brand)
		fmt.Fprintf(b, "Available %s models: %s\n", slots.Brand, models)
		fmt.Fprintf(b, "Price range: %s\n", price)
	}
	if slots.Model != "" {
		fmt.Fprintf(b, "Specific model mentioned: %s\n", slots.Model)
	}
}

// repairCostKey maps a canonical service name onto the repair cost table.
func repairCostKey(service string) string {
	lower := strings.ToLower(service)
	switch {
	case strings.Contains(lower, "screen"):
		return catalog.ServiceScreenReplacement
	case strings.Contains(lower, "battery"):
		return catalog.ServiceBatteryReplacement
	}
	return ""
}

func writeRepairContext(b *strings.Builder, c *catalog.Catalog, slots slot.Slots) {
	brand := slots.Brand
	if brand == "" {
		brand = "various brands"
	}

	key := repairCostKey(slots.Service)
	if key != "" {
		if cost, ok := c.RepairCost(key, slots.Brand); ok {
			fmt.Fprintf(b, "Customer is asking about %s for %s.\n", slots.Service, brand)
			fmt.Fprintf(b, "Price range for this service: %s\n", cost)
			if key == catalog.ServiceBatteryReplacement {
				b.WriteString("We use original batteries with warranty.\n")
			} else {
				b.WriteString("We use quality replacement parts with warranty.\n")
			}
			return
		}
	}

	fmt.Fprintf(b, "Customer is asking about %s for %s.\n", slots.Service, brand)
	b.WriteString("We offer professional repair services with warranty.\n")
	if len(c.SoftwareServices) > 0 && key == "" {
		items := make([]string, 0, len(c.SoftwareServices))
		for _, s := range c.SoftwareServices {
			items = append(items, s.Name+": "+s.Price)
		}
		fmt.Fprintf(b, "Software service prices: %s\n", strings.Join(items, ", "))
	}
	b.WriteString("For exact pricing, suggest calling the shop or visiting in person.\n")
}
