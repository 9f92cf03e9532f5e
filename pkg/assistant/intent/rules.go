package intent

import "shop-assistant-be/pkg/store"

// Declaration order is the tie-break: the first matching intent wins.
// STOCK_INQUIRY is declared last in every table.

const (
	enPhoneWords     = `(phone|iphone|samsung|xiaomi|oppo|vivo|huawei|apple|redmi)`
	enAccessoryWords = `(charger|cable|cover|case|glass|headphone|earphone|earbud)`

	siPhoneWords     = `(දුරකථන|ෆෝන්|අයිෆෝන්|සැම්සං|ෂාඕමි|ඔප්පෝ|විවෝ|හුවාවේ|ඇපල්|රෙඩ්මි)`
	siAccessoryWords = `(චාජර්|කේබල්|කවර|කේස්|ග්ලාස්|හෙඩ්ෆෝන්|ඉයර්ෆෝන්|ඉයර්බඩ්)`

	sgAsk            = `(thiyenawada|tiyenawada|thiyanawada|thiyeda|tiyeda)`
	sgPrice          = `(gana|mila) (kiyada|keeyada|kiyak)`
	sgPhoneWords     = `(phone|fone|iphone|samsung|xiaomi|oppo|vivo|huawei|apple|redmi)`
	sgAccessoryWords = `(charger|chargar|cable|cover|case|glass|headphone|earphone|earbud)`
)

func englishRules() []Rule {
	return []Rule{
		{ProductInquiry, []string{
			`do you (have|sell|offer) (.*?)` + enPhoneWords + `?`,
			`(looking for|need|want) (a|an) (.*?)` + enPhoneWords,
			`(is|are) (.*?)` + enPhoneWords + ` available`,
			`price of (.*?)` + enPhoneWords,
		}},
		{AccessoryInquiry, []string{
			`do you (have|sell|offer) (.*?)` + enAccessoryWords,
			`(looking for|need|want) (a|an) (.*?)` + enAccessoryWords,
			`(is|are) (.*?)` + enAccessoryWords + ` available`,
			`price of (.*?)` + enAccessoryWords,
		}},
		{RepairInquiry, []string{
			`(can|could) you (fix|repair|replace) (my|the) (.*?)(screen|battery|phone|software|hardware)`,
			`(how much|what) (would it|does it|will it) cost to (fix|repair|replace) (.*?)(screen|battery)`,
			`(is|are) (.*?) (repair|screen replacement|battery replacement) (possible|available)`,
		}},
		{LocationInquiry, []string{
			`(where|what) is your (location|address|shop)`,
			`(how|where) (can|do) i (find|reach|get to) (your shop|your store|you)`,
			`(where are you|where is the shop) (located|situated)`,
		}},
		{ContactInquiry, []string{
			`(what is|what's) your (contact|phone|number)`,
			`(how|can) (can|do) i (contact|call|reach) you`,
			`(can|could) you (give|share) (me|your) (number|contact|details)`,
		}},
		{HoursInquiry, []string{
			`(when|what time) (are you|is the shop|is the store) (open|closed)`,
			`(what are|what's) your (hours|business hours|working hours|opening hours)`,
		}},
		{DeliveryInquiry, []string{
			`do you (offer|have|provide) (delivery|shipping)`,
			`(can|will) you (deliver|ship) to (.*?)`,
			`(how long|how much time) (will|does) (delivery|shipping) take`,
		}},
		{WarrantyInquiry, []string{
			`(what|how long) is the (warranty|guarantee) (period|duration)`,
			`(is|are) (.*?) (covered|included) (in|under) (warranty|guarantee)`,
			`do you (offer|provide|give) (warranty|guarantee) (for|on) (.*?)`,
		}},
		{StockInquiry, []string{
			`in stock`,
			`stock (available|left|status|check)`,
			`(how many|any) (.*?) (left|remaining)`,
		}},
	}
}

func sinhalaRules() []Rule {
	return []Rule{
		{ProductInquiry, []string{
			`(.*?)` + siPhoneWords + `(.*?) තියෙනවද`,
			`(.*?)` + siPhoneWords + `(.*?) විකුණනවද`,
			`(.*?)` + siPhoneWords + `(.*?) මිල කීයද`,
		}},
		{AccessoryInquiry, []string{
			`(.*?)` + siAccessoryWords + `(.*?) තියෙනවද`,
			`(.*?)` + siAccessoryWords + `(.*?) විකුණනවද`,
			`(.*?)` + siAccessoryWords + `(.*?) මිල කීයද`,
		}},
		{RepairInquiry, []string{
			`(.*?)(තිරය|බැටරිය|දුරකථනය|සොෆ්ට්වෙයාර්|හාඩ්වෙයාර්)(.*?) හදන්න පුළුවන්ද`,
			`(.*?)(තිරය|බැටරිය|දුරකථනය|සොෆ්ට්වෙයාර්|හාඩ්වෙයාර්)(.*?) හදන්න කීයක් වෙයිද`,
			`(.*?)(අලුත්වැඩියා|තිර ප්‍රතිස්ථාපනය|බැටරි ප්‍රතිස්ථාපනය)(.*?) කරනවද`,
		}},
		{LocationInquiry, []string{
			`(.*?)(ලිපිනය|ස්ථානය|කොහේද|කොහෙද)(.*?) තියෙන්නේ`,
			`(.*?)(යන්නේ|ලඟා වෙන්නේ|සොයා ගන්නේ) කොහොමද`,
		}},
		{ContactInquiry, []string{
			`(.*?)(දුරකථන අංකය|අංකය|ඇමතීම)(.*?) මොකක්ද`,
			`(.*?)(සම්බන්ධ වෙන්නේ|අමතන්නේ) කොහොමද`,
		}},
		{HoursInquiry, []string{
			`(.*?)(විවෘත|වසා) කරන වේලාව(.*?) මොකක්ද`,
			`(.*?)(වැඩ කරන|විවෘත) වේලාවන්(.*?) මොනවාද`,
		}},
		{DeliveryInquiry, []string{
			`(.*?)(ඩිලිවරි|බෙදාහැරීම|ගෙන්වා)(.*?)(තියෙනවද|කරනවද|පුළුවන්ද)`,
		}},
		{WarrantyInquiry, []string{
			`(.*?)(වගකීම|වොරන්ටි)`,
		}},
		{StockInquiry, []string{
			`(.*?)(තොගයේ|ස්ටොක්)`,
		}},
	}
}

func singlishRules() []Rule {
	return []Rule{
		{ProductInquiry, []string{
			sgPhoneWords + `(.*?)` + sgAsk,
			sgPhoneWords + `(.*?)` + sgPrice,
			sgPhoneWords + ` (ekak|ekakda) (oni|ganna)`,
		}},
		{AccessoryInquiry, []string{
			sgAccessoryWords + `(.*?)` + sgAsk,
			sgAccessoryWords + `(.*?)` + sgPrice,
			sgAccessoryWords + ` (ekak|ekakda) (oni|ganna)`,
		}},
		{RepairInquiry, []string{
			`(screen|display|battery|batari|phone|software|hardware)(.*?)(hadanna|hadala|hadanawada|maru karanna)`,
			`(repair|fix)(.*?)(karanawada|puluwanda|karanna)`,
		}},
		{LocationInquiry, []string{
			`(shop eka|kade|address eka)(.*?)(koheda|kohida|kohenda)`,
			`(koheda|kohida) (thiyenne|inne)`,
		}},
		{ContactInquiry, []string{
			`(number eka|phone number|contact number)(.*?)(mokakda|denna)`,
			`call (karanne|karanna) (kohomada|mokatada)`,
		}},
		{HoursInquiry, []string{
			`(open|close|arinne|wahanne)(.*?)(kiyatada|kiyatad|welawa)`,
			`kiyata (open|arinawa|wahanawa)`,
		}},
		{DeliveryInquiry, []string{
			`deliver(y)?(.*?)(karanawada|thiyenawada|puluwanda)`,
			`gedara(ta)? (ewanawada|genath denawada)`,
		}},
		{WarrantyInquiry, []string{
			`(warranty|waranti|guarantee)(.*?)(thiyenawada|kiyada|kochchara|denawada)`,
		}},
		{StockInquiry, []string{
			`stock (thiyenawada|eke|ekeda)`,
			`in stock`,
		}},
	}
}

// DefaultRules returns the built-in tables for every supported language.
func DefaultRules() map[store.Language][]Rule {
	return map[store.Language][]Rule{
		store.LanguageEnglish:  englishRules(),
		store.LanguageSinhala:  sinhalaRules(),
		store.LanguageSinglish: singlishRules(),
	}
}
