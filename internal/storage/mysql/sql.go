package mysql

const upsertPropertySQL = `
INSERT INTO properties
  (id, position, name, rating, categories, state, city, country, price, bed, shower, occupants, image, discount)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  position   = VALUES(position),
  name       = VALUES(name),
  rating     = VALUES(rating),
  categories = VALUES(categories),
  state      = VALUES(state),
  city       = VALUES(city),
  country    = VALUES(country),
  price      = VALUES(price),
  bed        = VALUES(bed),
  shower     = VALUES(shower),
  occupants  = VALUES(occupants),
  image      = VALUES(image),
  discount   = VALUES(discount),
  updated_at = CURRENT_TIMESTAMP
`

const insertMissSQL = `
INSERT INTO ingest_misses (source, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE http_status = VALUES(http_status), seen_at = CURRENT_TIMESTAMP
`

const selectPropertyIDsSQL = `SELECT id FROM properties`

// placeholders are appended per call: IN (?, ?, ...)
const deletePropertiesSQL = `DELETE FROM properties WHERE id IN `

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const selectPropertyCols = `
SELECT id, position, name, rating, categories, state, city, country, price,
       bed, shower, occupants, image, discount
FROM properties
`

// Source order first; seq breaks ties between equal positions.
const listPropertiesSQL = selectPropertyCols + `ORDER BY position, seq`

const getPropertySQL = selectPropertyCols + `WHERE id = ?`
