package store

// listingColumns is the column list every listing scan expects, in order.
const listingColumns = `id, url, title,
	price, model_year, mileage, condition_text, condition_score, condition_label,
	brand, model, fuel_type, transmission, body_type, location, dealer_name,
	price_score, year_score, mileage_score, score_raw, score,
	fetched_at, updated_at`

// Listing queries.
const (
	queryUpsertListing = `
		INSERT INTO listings (
			url, title,
			price, model_year, mileage, condition_text, condition_score, condition_label,
			brand, model, fuel_type, transmission, body_type, location, dealer_name,
			fetched_at, updated_at
		) VALUES (
			@url, @title,
			@price, @model_year, @mileage, @condition_text, @condition_score, @condition_label,
			@brand, @model, @fuel_type, @transmission, @body_type, @location, @dealer_name,
			now(), now()
		)
		ON CONFLICT (url) DO UPDATE SET
			title = EXCLUDED.title,
			price = EXCLUDED.price,
			model_year = EXCLUDED.model_year,
			mileage = EXCLUDED.mileage,
			condition_text = EXCLUDED.condition_text,
			condition_score = EXCLUDED.condition_score,
			condition_label = EXCLUDED.condition_label,
			brand = EXCLUDED.brand,
			model = EXCLUDED.model,
			fuel_type = EXCLUDED.fuel_type,
			transmission = EXCLUDED.transmission,
			body_type = EXCLUDED.body_type,
			location = EXCLUDED.location,
			dealer_name = EXCLUDED.dealer_name,
			fetched_at = now(),
			updated_at = now()
		RETURNING id, fetched_at, updated_at`

	queryGetListingByID = `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	queryGetListingByURL = `SELECT ` + listingColumns + ` FROM listings WHERE url = $1`

	queryListAllListings = `SELECT ` + listingColumns + ` FROM listings ORDER BY fetched_at, id`

	queryTopListings = `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE score IS NOT NULL
		ORDER BY score DESC, id ASC
		LIMIT $1`

	// Nil patch fields arrive as NULL and keep the current value.
	queryUpdateListing = `
		UPDATE listings SET
			title = COALESCE(@title, title),
			price = COALESCE(@price, price),
			model_year = COALESCE(@model_year, model_year),
			mileage = COALESCE(@mileage, mileage),
			condition_text = COALESCE(@condition_text, condition_text),
			condition_score = COALESCE(@condition_score, condition_score),
			condition_label = COALESCE(@condition_label, condition_label),
			brand = COALESCE(@brand, brand),
			model = COALESCE(@model, model),
			fuel_type = COALESCE(@fuel_type, fuel_type),
			transmission = COALESCE(@transmission, transmission),
			body_type = COALESCE(@body_type, body_type),
			location = COALESCE(@location, location),
			dealer_name = COALESCE(@dealer_name, dealer_name),
			updated_at = now()
		WHERE id = @id
		RETURNING ` + listingColumns

	queryDeleteListing = `DELETE FROM listings WHERE id = $1`

	queryDeleteListingsOlderThan = `DELETE FROM listings WHERE fetched_at < $1`

	queryCountListings = `SELECT COUNT(*) FROM listings`
)

// Score queries.
const (
	// scoreLockKey serializes scoring passes across connections and replicas.
	scoreLockKey = 7_302_114_001

	queryLockScoring   = `SELECT pg_advisory_lock($1)`
	queryUnlockScoring = `SELECT pg_advisory_unlock($1)`

	queryUpdateScores = `
		UPDATE listings SET
			price_score = $2,
			year_score = $3,
			mileage_score = $4,
			condition_score = $5,
			score_raw = $6,
			score = $7,
			updated_at = now()
		WHERE id = $1`

	queryListScores = `SELECT score FROM listings WHERE score IS NOT NULL ORDER BY score DESC`
)
