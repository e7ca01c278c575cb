package location

// Справочник локаций. Ключи - стабильные ASCII-значения для фильтра и URL.
// Страна без штатов хранит города напрямую.

var catalog = []countryNode{
	{
		key: "tr", label: "Türkiye",
		cities: []cityNode{
			{key: "istanbul", label: "İstanbul", districts: []option{
				{"adalar", "Adalar"}, {"atasehir", "Ataşehir"}, {"bakirkoy", "Bakırköy"},
				{"besiktas", "Beşiktaş"}, {"beykoz", "Beykoz"}, {"beyoglu", "Beyoğlu"},
				{"buyukcekmece", "Büyükçekmece"}, {"kadikoy", "Kadıköy"}, {"kartal", "Kartal"},
				{"maltepe", "Maltepe"}, {"sariyer", "Sarıyer"}, {"sisli", "Şişli"},
				{"uskudar", "Üsküdar"},
			}},
			{key: "ankara", label: "Ankara", districts: []option{
				{"cankaya", "Çankaya"}, {"etimesgut", "Etimesgut"}, {"golbasi", "Gölbaşı"},
				{"kecioren", "Keçiören"}, {"yenimahalle", "Yenimahalle"},
			}},
			{key: "izmir", label: "İzmir", districts: []option{
				{"bornova", "Bornova"}, {"cesme", "Çeşme"}, {"karsiyaka", "Karşıyaka"},
				{"konak", "Konak"}, {"urla", "Urla"},
			}},
			{key: "antalya", label: "Antalya", districts: []option{
				{"alanya", "Alanya"}, {"kas", "Kaş"}, {"kemer", "Kemer"},
				{"konyaalti", "Konyaaltı"}, {"manavgat", "Manavgat"}, {"muratpasa", "Muratpaşa"},
			}},
			{key: "mugla", label: "Muğla", districts: []option{
				{"bodrum", "Bodrum"}, {"datca", "Datça"}, {"fethiye", "Fethiye"},
				{"marmaris", "Marmaris"}, {"milas", "Milas"},
			}},
			{key: "bursa", label: "Bursa", districts: []option{
				{"mudanya", "Mudanya"}, {"nilufer", "Nilüfer"}, {"osmangazi", "Osmangazi"},
			}},
		},
	},
	{
		key: "cy", label: "Kuzey Kıbrıs",
		cities: []cityNode{
			{key: "girne", label: "Girne", districts: []option{
				{"alsancak", "Alsancak"}, {"catalkoy", "Çatalköy"}, {"lapta", "Lapta"},
			}},
			{key: "gazimagusa", label: "Gazimağusa", districts: []option{
				{"iskele", "İskele"}, {"yenibogazici", "Yeniboğaziçi"},
			}},
			{key: "lefkosa", label: "Lefkoşa", districts: []option{
				{"gonyeli", "Gönyeli"}, {"ortakoy", "Ortaköy"},
			}},
		},
	},
	{
		key: "ae", label: "Birleşik Arap Emirlikleri",
		states: []stateNode{
			{key: "dubai", label: "Dubai", cities: []cityNode{
				{key: "dubai", label: "Dubai", districts: []option{
					{"business-bay", "Business Bay"}, {"downtown", "Downtown"},
					{"dubai-marina", "Dubai Marina"}, {"jumeirah", "Jumeirah"},
				}},
			}},
			{key: "abu-dhabi", label: "Abu Dabi", cities: []cityNode{
				{key: "abu-dhabi", label: "Abu Dabi", districts: []option{
					{"al-reem", "Al Reem"}, {"saadiyat", "Saadiyat"}, {"yas", "Yas"},
				}},
				{key: "al-ain", label: "Al Ain"},
			}},
		},
	},
	{
		key: "us", label: "Amerika Birleşik Devletleri",
		states: []stateNode{
			{key: "ca", label: "California", cities: []cityNode{
				{key: "los-angeles", label: "Los Angeles", districts: []option{
					{"hollywood", "Hollywood"}, {"santa-monica", "Santa Monica"},
				}},
				{key: "san-francisco", label: "San Francisco", districts: []option{
					{"mission", "Mission"}, {"soma", "SoMa"},
				}},
			}},
			{key: "fl", label: "Florida", cities: []cityNode{
				{key: "miami", label: "Miami", districts: []option{
					{"brickell", "Brickell"}, {"miami-beach", "Miami Beach"},
				}},
				{key: "orlando", label: "Orlando"},
			}},
			{key: "ny", label: "New York", cities: []cityNode{
				{key: "new-york", label: "New York", districts: []option{
					{"brooklyn", "Brooklyn"}, {"manhattan", "Manhattan"}, {"queens", "Queens"},
				}},
			}},
		},
	},
}
