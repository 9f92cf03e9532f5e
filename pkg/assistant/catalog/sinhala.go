package catalog

import "shop-assistant-be/pkg/store"

// Sinhala returns the Sinhala catalog.
func Sinhala() *Catalog {
	return &Catalog{
		Language:     store.LanguageSinhala,
		LanguageName: "Sinhala (සිංහල)",

		Name:         "සුන් මොබයිල් හොරණ",
		Address:      "අංක 30, පානදුර පාර, හොරණ (හෝල් එක ඉස්සරහ)",
		Landmark:     "හෝල් එක ඉස්සරහ",
		Phone:        "0767410963 / 0768371984 / 0764171984",
		PrimaryPhone: primaryPhone,
		Hours:        "උදේ 9:00 සිට රාත්‍රී 8:00 දක්වා, සතියේ දින හතම",
		Intro:        "මම සුන් මොබයිල් හොරණ හි virtual සහායකයා වෙමි. මට ඔබට අපගේ නිෂ්පාදන, සේවා සහ ඔබට තිබිය හැකි වෙනත් ඕනෑම ප්‍රශ්නයක් පිළිබඳ තොරතුරු සමඟ උදව් කළ හැකිය.",
		Delivery:     "දිවයින පුරා බෙදාහැරීම ලබා ගත හැකිය, බෙදාහැරීමේ කාලය ස්ථානය අනුව දින 1-3 දක්වා වෙනස් වේ",
		PaymentMethods: []string{
			"මුදල්", "කාඩ්පත් ගෙවීම්", "බැංකු මාරු කිරීම්", "මාර්ගගත ගෙවීම් යෙදුම්",
		},

		Brands:        brands,
		PopularModels: popularModels,
		PriceRanges: map[string]string{
			"Samsung": "රු. 55,000 - රු. 450,000",
			"Apple":   "රු. 175,000 - රු. 585,000",
			"Xiaomi":  "රු. 35,000 - රු. 180,000",
			"Oppo":    "රු. 40,000 - රු. 150,000",
			"Vivo":    "රු. 35,000 - රු. 140,000",
			"Huawei":  "රු. 45,000 - රු. 200,000",
		},

		Accessories: []string{"චාජර්", "හෙඩ්ෆෝන්", "දත්ත කේබල්", "පිටුපස ආවරණ", "ටෙම්පර්ඩ් ග්ලාස්"},
		AccessoryDetails: map[string][]string{
			"chargers":       {"වේගවත් චාජර් (18W-65W)", "රැහැන් රහිත චාජර්", "කාර් චාජර්", "පවර් බෑන්ක්"},
			"headphones":     {"රැහැන් සහිත ඉයර්ෆෝන්", "බ්ලූටූත් ඉයර්බඩ්ස්", "කන් වටා හෙඩ්ෆෝන්", "ගේමිං හෙඩ්සෙට්"},
			"data_cables":    {"Type-C", "Micro USB", "Lightning කේබල්", "3-in-1 කේබල්"},
			"back_covers":    {"සිලිකන් කවර", "හාඩ් කවර", "ෆ්ලිප් කවර", "විනිවිද පෙනෙන කවර", "සම් කවර"},
			"tempered_glass": {"MTB ටෙම්පර්ඩ් ග්ලාස්", "SUPER D ග්ලාස්", "ප්‍රයිවසි ග්ලාස්", "UV ග්ලාස් ආරක්ෂක"},
		},

		Services: []string{
			"හාඩ්වෙයාර් අලුත්වැඩියා", "සොෆ්ට්වෙයාර් අලුත්වැඩියා", "iCloud අගුළු ඉවත් කිරීම",
			"FRP අගුළු ඉවත් කිරීම", "Mi ගිණුම් අගුළු ඉවත් කිරීම", "ජාල අගුළු විවෘත කිරීම", "තිර ප්‍රතිස්ථාපනය",
		},
		RepairCosts: map[string]map[string]string{
			ServiceScreenReplacement: {
				"Samsung":    "රු. 8,000 - රු. 45,000",
				"Apple":      "රු. 18,000 - රු. 75,000",
				"Xiaomi":     "රු. 5,000 - රු. 20,000",
				OthersBucket: "රු. 4,500 - රු. 30,000",
			},
			ServiceBatteryReplacement: {
				"Samsung":    "රු. 3,500 - රු. 12,000",
				"Apple":      "රු. 8,000 - රු. 25,000",
				OthersBucket: "රු. 2,500 - රු. 8,000",
			},
		},
		SoftwareServices: []PriceItem{
			{Name: "OS update", Price: "රු. 1,500"},
			{Name: "Data recovery", Price: "රු. 2,500 - රු. 5,000"},
			{Name: "FRP unlock", Price: "රු. 2,500 - රු. 4,000"},
			{Name: "Factory reset", Price: "රු. 1,000"},
		},
		Warranty: []string{
			"ජංගම දුරකථන: වසරක වගකීමක්",
			"උපාංග: අයිතමය අනුව මාස 3-6 වගකීමක්",
			"අලුත්වැඩියා සේවා: මාස 1-3 වගකීමක්",
		},

		Stock:  stock,
		Images: productImages,

		Templates: Templates{
			Welcome: `🌟 සුන් මොබයිල් හොරණ වෙත සාදරයෙන් පිළිගනිමු! 🌟

ඔබගේ සියලුම ජංගම දුරකථන අවශ්‍යතා සඳහා අසමසම සේවාවක්.
ඔබට අවශ්‍ය භාෂාව තෝරන්න:
1 English
2 සිංහල
3 Singlish

📱 සුන් මොබයිල් හොරණ - දශක දෙකක අභිමානවත් නාමය! 📱
[කරුණාකර ඔබේ තේරීම සඳහා අංකය ඇතුළත් කරන්න (Reply).]`,
			Menu: `ඔබට අවශ්‍ය සේවාව තෝරන්න:

1 ජංගම දුරකථන
2 දුරකථන උපාංග
3 අලුත්වැඩියා සේවා
4 අප අමතන්න
5 හුවමාරු පිරිනැමුම්

📱 සුන් මොබයිල් හොරණ - දශක දෙකක අභිමානවත් නාමය! 📱
[ඔබේ තේරීම සඳහා අංකය ඇතුළත් කරන්න (Reply). භාෂාව වෙනස් කිරීමට * ඇතුළත් කරන්න (Reply).]`,
			Phones: `අපි ප්‍රමුඛ වෙළඳ නාම වලින් පුළුල් පරාසයක ජංගම දුරකථන ඉදිරිපත් කරමු:

Samsung, Apple, Xiaomi, Oppo, Vivo, Huawei සහ වෙනත් වෙළඳ නාම.

[ඔබට අවශ්‍ය දුරකථනය ගැන අසන්න. ප්‍රධාන මෙනුවට ආපසු යාමට # ඇතුළත් කරන්න (Reply).]`,
			Accessories: `අපි වගකීමක් සහිත ගුණාත්මක උපාංග ඉදිරිපත් කරමු:

- චාජර් (වේගවත් සහ සාමාන්‍ය)
- හෙඩ්ෆෝන් (රැහැන් සහිත සහ රැහැන් රහිත)
- දත්ත කේබල් (Micro, Type-C සහ Lightning)
- පිටුපස ආවරණ (සියලු නිර්මාණ)
- ටෙම්පර්ඩ් ග්ලාස් (MTB සහ SUPER D)

[ඔබට අවශ්‍ය උපාංගය ගැන අසන්න. ප්‍රධාන මෙනුවට ආපසු යාමට # ඇතුළත් කරන්න (Reply).]`,
			Repairs: `අපි වෘත්තීය අලුත්වැඩියා සේවා ඉදිරිපත් කරමු:

- හාඩ්වෙයාර් අලුත්වැඩියා
- සොෆ්ට්වෙයාර් අලුත්වැඩියා
- iCloud අගුළු ඉවත් කිරීම
- FRP අගුළු ඉවත් කිරීම
- Mi ගිණුම් අගුළු ඉවත් කිරීම
- ජාල අගුළු විවෘත කිරීම
- තිර ප්‍රතිස්ථාපනය

[ඔබගේ දුරකථනය සහ ගැටලුව සඳහන් කරන්න. ප්‍රධාන මෙනුවට ආපසු යාමට # ඇතුළත් කරන්න (Reply).]`,
			Contact: `අප වෙත පැමිණෙන්න හෝ අප අමතන්න:

සුන් මොබයිල් හොරණ
අංක 30, පානදුර පාර, හොරණ
(හෝල් එක ඉස්සරහ)

📞 අමතන්න:
0767410963 / 0768371984 / 0764171984

ලංකාවේ ඕනෑම තැනකට ගෙන්වා ගැනීමට අපව අමතන්න!

[ප්‍රධාන මෙනුවට ආපසු යාමට # ඇතුළත් කරන්න (Reply).]`,
			Exchange: `ඔබගේ පැරණි දුරකථනය අලුත් එකක් සඳහා හුවමාරු කරගන්න!
ඔබගේ උපාංගය භාරදෙන විට විශේෂ වට්ටම් ලබාගන්න.

[ඔබගේ දුරකථනයේ හුවමාරු වටිනාකම ගැන අසන්න. ප්‍රධාන මෙනුවට ආපසු යාමට # ඇතුළත් කරන්න (Reply).]`,
			InvalidInput:   "සමාවන්න, ඔබේ පණිවිඩය තේරුම් ගත නොහැකි විය. කරුණාකර නැවත උත්සාහ කරන්න.",
			Error:          "සමාවන්න, දෝෂයක් ඇති විය. කරුණාකර නැවත උත්සාහ කරන්න හෝ අපගේ දුරකථන අංකය අමතන්න: 0767410963",
			Fallback:       "සමාවන්න, මට ඔබේ ප්‍රශ්නයට පිළිතුරු දීමට නොහැකි විය. කරුණාකර නැවත උත්සාහ කරන්න හෝ අපගේ දුරකථන අංකය අමතන්න: 0767410963",
			StockAvailable: "%s තොගයේ ඇත: ඒකක %d ක් සුන් මොබයිල් හොරණ හි තිබේ. වෙන් කරවා ගැනීමට %s අමතන්න.",
			StockOut:       "සමාවන්න, %s දැනට තොගයේ නැත. එය ලැබුණු විට දැනගැනීමට %s අමතන්න.",
			StockUnknown:   "එම භාණ්ඩයේ තොග තත්ත්වය දැනගැනීමට කරුණාකර %s අමතන්න.",
		},
		FAQ: FAQ{
			Warranty:      "අපගේ සියලුම නිෂ්පාදන සඳහා සම්මත වගකීමක් ඇත. ජංගම දුරකථන සඳහා වසරක වගකීමක් ඇති අතර, උපාංග සඳහා අයිතමය අනුව මාස 3-6 වගකීමක් ඇත.",
			Delivery:      "අපි ශ්‍රී ලංකාව පුරා බෙදාහැරීම් සිදු කරමු. බෙදාහැරීමේ කාලය ඔබගේ ස්ථානය මත රඳා පවතී, සාමාන්‍යයෙන් දින 1-3 ක් තුළ.",
			Payment:       "අපි භාණ්ඩ ලැබුණු විට මුදල් ගෙවීම, බැංකු මාරු කිරීම් සහ ඩිජිටල් ගෙවීම් ක්‍රම පිළිගනිමු.",
			BusinessHours: "අපි සතියේ දින හතම උදේ 9:00 සිට රාත්‍රී 8:00 දක්වා විවෘතව ඇත.",
		},
	}
}
