package catalog

import "shop-assistant-be/pkg/store"

// Singlish returns the romanized-Sinhala catalog. Shop facts are shared with English.
func Singlish() *Catalog {
	c := English()
	c.Language = store.LanguageSinglish
	c.LanguageName = "Singlish (Sinhala written in English letters)"
	c.Intro = "Mama Sun Mobile Horana eke virtual assistant. Phones, accessories, repair services gana oni deyak ahanna."
	c.Templates = Templates{
		Welcome: `🌟 Sun Mobile Horana ekata Ayubowan! 🌟

Oyage mobile phone saha accessories siyalu deyakma api laga thiyenawa.
Please select your language:
1 English
2 සිංහල
3 Singlish

📱 Sun Mobile Horana - Awurudu 20k experience ekak! 📱
[Please number eka reply karanna.]`,
		Menu: `Hello! Oyata oni service eka select karanna:

1 Mobile Phones
2 Phone Accessories
3 Repair Services
4 Contact Us
5 Exchange Offers

📱 Sun Mobile Horana - Phone saha repair services 20 years! 📱
[Number eka reply karanna. Language eka change karanna * reply karanna.]`,
		Phones: `Api laga thiyena phones:

Samsung, Apple, Xiaomi, Oppo, Vivo, Huawei saha wena brands.

[Oyata oni phone eka gana ahanna, e.g. "samsung phone thiyenawada". Main menu ekata # reply karanna.]`,
		Accessories: `Warranty ekak ekka api accessories supply karanawa:

- Chargers (Fast & Normal)
- Headphones (Wire & Wireless)
- Data Cables (Micro, Type-C & Lightning)
- Back Covers (Designs godak)
- Tempered Glass (MTB & SUPER D)

[Oyata oni accessory eka gana ahanna. Main menu ekata # reply karanna.]`,
		Repairs: `Api laga repair services thiyenawa:

- Hardware Repairs
- Software Repairs
- iCloud Unlock
- FRP Lock Ayin kirima
- Mi Account Unlock
- Network Unlock
- Screen Replace kirima

[Oyage phone eka saha aulak kiyanna. Main menu ekata # reply karanna.]`,
		Contact: `Api hamuwenna enna or contact karanna:

Sun Mobile Horana
No.30 Panadura Road, Horana
(Hall eka issaraha)

📞 Call karanna:
0767410963 / 0768371984 / 0764171984

Lanka purama deliver karanawa!

[Main menu ekata yanna # reply karanna.]`,
		Exchange: `Parana phone eka exchange karala aluth ekak ganna puluwan!
Exchange karaddi special discount ekakuth hambenwa.

[Oyage phone eke exchange value eka gana ahanna. Main menu ekata yanna # reply karanna.]`,
		InvalidInput:   "Sorry, oyage message eka therenne na. Please try again.",
		Error:          "Sorry, mokak hari aulak una. Ayeth try karanna nathnam 0767410963 ta call karanna.",
		Fallback:       "Sorry, oyage prashnayata uththara denna bari una. Ayeth try karanna nathnam 0767410963 ta call karanna.",
		StockAvailable: "%s stock eke thiyenawa: units %d k Sun Mobile Horana eke thiyenawa. Reserve karanna %s ta call karanna.",
		StockOut:       "Sorry, %s dan stock eke na. Aapu gaman danaganna %s ta call karanna.",
		StockUnknown:   "E item eke stock eka danaganna %s ta call karanna.",
	}
	c.FAQ = FAQ{
		Warranty:      "All our products come with a standard warranty. Mobile phones have 1-year warranty, accessories have 3-6 months warranty depending on the item.",
		Delivery:      "We deliver across Sri Lanka. Delivery time depends on your location, typically 1-3 days.",
		Payment:       "We accept cash on delivery, bank transfers, and digital payment methods.",
		BusinessHours: "We are open from 9:00 AM to 8:00 PM, seven days a week.",
	}
	return c
}
