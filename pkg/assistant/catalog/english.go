package catalog

import "shop-assistant-be/pkg/store"

const primaryPhone = "0767410963"

var popularModels = map[string][]string{
	"Samsung": {"Galaxy S23", "Galaxy S24", "Galaxy A54", "Galaxy A34", "Galaxy Z Fold 5"},
	"Apple":   {"iPhone 15", "iPhone 15 Pro", "iPhone 14", "iPhone 14 Pro", "iPhone 13"},
	"Xiaomi":  {"Redmi Note 13 Pro", "Redmi 13C", "Poco F5", "Xiaomi 13T"},
	"Oppo":    {"Reno 10", "A78", "A18", "Find X6"},
	"Vivo":    {"V27", "V29", "Y27", "Y17s"},
	"Huawei":  {"Nova 11", "Nova Y90", "P60 Pro"},
}

var brands = []string{"Samsung", "Apple", "Xiaomi", "Oppo", "Vivo", "Huawei"}

// Item names are model names, so every language shares the same stock table.
var stock = []StockItem{
	{Name: "iPhone 15 Pro", Quantity: 2},
	{Name: "iPhone 15", Quantity: 4},
	{Name: "iPhone 14 Pro", Quantity: 0},
	{Name: "iPhone 14", Quantity: 3},
	{Name: "iPhone 13", Quantity: 1},
	{Name: "Galaxy S24", Quantity: 3},
	{Name: "Galaxy S23", Quantity: 0},
	{Name: "Galaxy A54", Quantity: 6},
	{Name: "Galaxy A34", Quantity: 5},
	{Name: "Redmi Note 13 Pro", Quantity: 5},
	{Name: "Redmi 13C", Quantity: 8},
	{Name: "Reno 10", Quantity: 2},
	{Name: "Nova 11", Quantity: 0},
	{Name: "Fast Charger", Quantity: 12},
	{Name: "Wireless Charger", Quantity: 0},
	{Name: "Power Bank", Quantity: 7},
	{Name: "Bluetooth Earbuds", Quantity: 9},
	{Name: "Tempered Glass", Quantity: 40},
}

var productImages = ImageTable{
	CategoryPhones: {
		"samsung": {
			"Galaxy S23": "/phones/samsung/s23.jpeg",
			"Galaxy S24": "/phones/samsung/s24.jpeg",
			"Galaxy A54": "/phones/samsung/a54.jpeg",
		},
		"apple": {
			"iPhone 15": "/phones/apple/iphone15.jpeg",
			"iPhone 14": "/phones/apple/iphone14.jpeg",
			"iPhone 13": "/phones/apple/iphone13.jpeg",
		},
	},
	CategoryAccessories: {
		"chargers": {
			"Fast Charger":     "/accessories/chargers/fast_charger.jpeg",
			"Wireless Charger": "/accessories/chargers/wireless_charger.jpeg",
		},
		"cases": {
			"Silicon Case": "/accessories/cases/silicon_case.jpeg",
			"Leather Case": "/accessories/cases/leather_case.jpeg",
		},
	},
}

// English returns the English catalog.
func English() *Catalog {
	return &Catalog{
		Language:     store.LanguageEnglish,
		LanguageName: "English",

		Name:         "Sun Mobile Horana",
		Address:      "No.30 Panadura Road, Horana (In front of the Hall)",
		Landmark:     "In front of the Hall",
		Phone:        "0767410963 / 0768371984 / 0764171984",
		PrimaryPhone: primaryPhone,
		Hours:        "9:00 AM to 8:00 PM, seven days a week",
		Intro:        "I'm the virtual assistant for Sun Mobile Horana. I can help you with information about our products, services, and any other queries you might have.",
		Delivery:     "Island-wide delivery available, delivery time 1-3 days depending on location",
		PaymentMethods: []string{
			"Cash", "Card payments", "Bank transfers", "Online payment apps",
		},

		Brands:        brands,
		PopularModels: popularModels,
		PriceRanges: map[string]string{
			"Samsung": "Rs. 55,000 - Rs. 450,000",
			"Apple":   "Rs. 175,000 - Rs. 585,000",
			"Xiaomi":  "Rs. 35,000 - Rs. 180,000",
			"Oppo":    "Rs. 40,000 - Rs. 150,000",
			"Vivo":    "Rs. 35,000 - Rs. 140,000",
			"Huawei":  "Rs. 45,000 - Rs. 200,000",
		},

		Accessories: []string{"chargers", "headphones", "data cables", "back covers", "tempered glass"},
		AccessoryDetails: map[string][]string{
			"chargers":       {"Fast chargers (18W-65W)", "Wireless chargers", "Car chargers", "Power banks"},
			"headphones":     {"Wired earphones", "Bluetooth earbuds", "Over-ear headphones", "Gaming headsets"},
			"data_cables":    {"Type-C", "Micro USB", "Lightning cables", "3-in-1 cables"},
			"back_covers":    {"Silicon cases", "Hard cases", "Flip covers", "Transparent cases", "Leather cases"},
			"tempered_glass": {"MTB tempered glass", "SUPER D glass", "Privacy glass", "UV glass protectors"},
		},

		Services: []string{
			"hardware repairs", "software repairs", "iCloud unlock", "FRP lock removal",
			"Mi account unlock", "network unlock", "screen replacement",
		},
		RepairCosts: map[string]map[string]string{
			ServiceScreenReplacement: {
				"Samsung":    "Rs. 8,000 - Rs. 45,000",
				"Apple":      "Rs. 18,000 - Rs. 75,000",
				"Xiaomi":     "Rs. 5,000 - Rs. 20,000",
				OthersBucket: "Rs. 4,500 - Rs. 30,000",
			},
			ServiceBatteryReplacement: {
				"Samsung":    "Rs. 3,500 - Rs. 12,000",
				"Apple":      "Rs. 8,000 - Rs. 25,000",
				OthersBucket: "Rs. 2,500 - Rs. 8,000",
			},
		},
		SoftwareServices: []PriceItem{
			{Name: "OS update", Price: "Rs. 1,500"},
			{Name: "Data recovery", Price: "Rs. 2,500 - Rs. 5,000"},
			{Name: "FRP unlock", Price: "Rs. 2,500 - Rs. 4,000"},
			{Name: "Factory reset", Price: "Rs. 1,000"},
		},
		Warranty: []string{
			"Mobile phones: 1 year warranty",
			"Accessories: 3-6 months warranty depending on the item",
			"Repair services: 1-3 months warranty",
		},

		Stock:  stock,
		Images: productImages,

		Templates: Templates{
			Welcome: `🌟 Welcome to Sun Mobile Horana! 🌟

We offer exceptional service for all your mobile phone needs.
Choose your preferred language:
1 English
2 සිංහල
3 Singlish

📱 Sun Mobile Horana - Trusted name for two decades! 📱
[Please reply with the number of your choice.]`,
			Menu: `Hello! Please select what you're looking for:

1 Mobile Phones
2 Phone Accessories
3 Repair Services
4 Contact Us
5 Exchange Offers

📱 Sun Mobile Horana - Trusted for two decades! 📱
[Reply with the number of your choice. To change language, enter * (Reply).]`,
			Phones: `We offer a wide range of mobile phones from top brands:

Samsung, Apple, Xiaomi, Oppo, Vivo, Huawei and other brands.

[Ask about any brand or model, e.g. "do you have samsung phones". To return to the main menu, enter # (Reply).]`,
			Accessories: `We offer quality accessories with warranty:

- Chargers (Fast & Normal)
- Headphones (Wired & Wireless)
- Data Cables (Micro, Type-C & Lightning)
- Back Covers (All Designs)
- Tempered Glass (MTB & SUPER D)

[Ask about any accessory, e.g. "looking for a fast charger". To return to the main menu, enter # (Reply).]`,
			Repairs: `We offer professional repair services:

- Hardware Repairs
- Software Repairs
- iCloud Unlock
- FRP Lock Removal
- Mi Account Unlock
- Network Unlock
- Screen Replacement

[Tell us your phone and the problem for a price range. To return to the main menu, enter # (Reply).]`,
			Contact: `Visit us or contact us:

Sun Mobile Horana
No.30 Panadura Road, Horana
(In front of the Hall)

📞 Call us:
0767410963 / 0768371984 / 0764171984

We deliver to anywhere in Sri Lanka!

[To return to the main menu, enter # (Reply).]`,
			Exchange: `Exchange your old phone for a new one!
Get special discounts when you trade in your device.

[Ask us about the exchange value of your phone. To return to the main menu, enter # (Reply).]`,
			InvalidInput:   "Sorry, I didn't understand that. Please try again.",
			Error:          "Sorry, something went wrong on our side. Please try again or call us at 0767410963.",
			Fallback:       "I apologize, I couldn't process your request. Please try again or call us at 0767410963 for immediate assistance.",
			StockAvailable: "Good news! %s is in stock: %d units available at Sun Mobile Horana. Call %s to reserve yours.",
			StockOut:       "Sorry, %s is currently out of stock. Please call us at %s and we will let you know when it arrives.",
			StockUnknown:   "Please call us at %s to check stock for that item. Our team will confirm availability right away.",
		},
		FAQ: FAQ{
			Warranty:      "All our products come with a standard warranty. Mobile phones have 1-year warranty, accessories have 3-6 months warranty depending on the item.",
			Delivery:      "We deliver across Sri Lanka. Delivery time depends on your location, typically 1-3 days.",
			Payment:       "We accept cash on delivery, bank transfers, and digital payment methods.",
			BusinessHours: "We are open from 9:00 AM to 8:00 PM, seven days a week.",
		},
	}
}
