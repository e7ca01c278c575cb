package postgres

// Колонки фильтра и сортировки дублируют поля документа doc, сам документ - источник истины
const schemaSQL = `
CREATE TABLE IF NOT EXISTS listings (
	id                 TEXT PRIMARY KEY,
	seq                BIGSERIAL NOT NULL,
	slug               TEXT NOT NULL UNIQUE,
	type               TEXT NOT NULL,
	status             TEXT NOT NULL,
	category_main      TEXT NOT NULL,
	category_sub       TEXT NOT NULL DEFAULT '',
	country            TEXT NOT NULL DEFAULT '',
	state              TEXT NOT NULL DEFAULT '',
	city               TEXT NOT NULL DEFAULT '',
	district           TEXT NOT NULL DEFAULT '',
	price              DOUBLE PRECISION NOT NULL,
	net_size           DOUBLE PRECISION,
	monthly_fee        DOUBLE PRECISION,
	room_type          TEXT NOT NULL DEFAULT '',
	furnishing         TEXT NOT NULL DEFAULT '',
	kitchen_type       TEXT NOT NULL DEFAULT '',
	heating_type       TEXT NOT NULL DEFAULT '',
	usage_status       TEXT NOT NULL DEFAULT '',
	deed_status        TEXT NOT NULL DEFAULT '',
	from_who           TEXT NOT NULL DEFAULT '',
	geo_cell           TEXT NOT NULL DEFAULT '',
	has_parking        BOOLEAN NOT NULL DEFAULT FALSE,
	has_elevator       BOOLEAN NOT NULL DEFAULT FALSE,
	is_furnished       BOOLEAN NOT NULL DEFAULT FALSE,
	has_balcony        BOOLEAN NOT NULL DEFAULT FALSE,
	in_site            BOOLEAN NOT NULL DEFAULT FALSE,
	credit_eligible    BOOLEAN NOT NULL DEFAULT FALSE,
	exchange_available BOOLEAN NOT NULL DEFAULT FALSE,
	has_pool           BOOLEAN NOT NULL DEFAULT FALSE,
	search_text        TEXT NOT NULL DEFAULT '',
	doc                JSONB NOT NULL,
	created_at         TIMESTAMPTZ NOT NULL,
	updated_at         TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS listings_type_city_idx ON listings (type, country, city, district);
CREATE INDEX IF NOT EXISTS listings_category_idx ON listings (category_main, category_sub);
CREATE INDEX IF NOT EXISTS listings_price_idx ON listings (price);
CREATE INDEX IF NOT EXISTS listings_created_idx ON listings (created_at DESC);
CREATE INDEX IF NOT EXISTS listings_geo_cell_idx ON listings (geo_cell text_pattern_ops);
`

// listingColumns - порядок колонок для INSERT и UPDATE, совпадает с rowValues
var listingColumns = []string{
	"id", "slug", "type", "status", "category_main", "category_sub",
	"country", "state", "city", "district",
	"price", "net_size", "monthly_fee",
	"room_type", "furnishing", "kitchen_type", "heating_type", "usage_status", "deed_status", "from_who",
	"geo_cell",
	"has_parking", "has_elevator", "is_furnished", "has_balcony", "in_site", "credit_eligible", "exchange_available", "has_pool",
	"search_text", "doc", "created_at", "updated_at",
}
