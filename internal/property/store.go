package property

import (
	"database/sql"
	"fmt"
)

// Store reads parcel records from the appraisal database.
type Store struct {
	db *sql.DB
}

// NewStore creates a store over an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const recordColumns = `account_num, situs_address, subdivision_code,
		living_area, market_value, land_value, year_built`

// ByID returns the record for one parcel, or (nil, nil) when the account
// number is unknown.
func (s *Store) ByID(id string) (*Record, error) {
	row := s.db.QueryRow(`
		SELECT `+recordColumns+`
		FROM parcel
		WHERE account_num = $1
	`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query parcel %s: %w", id, err)
	}
	return rec, nil
}

// ByAddress returns the record whose normalized situs address matches,
// or (nil, nil) when no parcel sits at that address. The caller is
// expected to normalize the address the same way the loader normalized
// the situs_address_norm column.
func (s *Store) ByAddress(normalized string) (*Record, error) {
	row := s.db.QueryRow(`
		SELECT `+recordColumns+`
		FROM parcel
		WHERE situs_address_norm = $1
	`, normalized)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query parcel by address: %w", err)
	}
	return rec, nil
}

// SubdivisionCandidates returns every parcel in a subdivision except the
// one named by excludeID, in account-number order.
func (s *Store) SubdivisionCandidates(code, excludeID string) ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT `+recordColumns+`
		FROM parcel
		WHERE subdivision_code = $1
		  AND account_num <> $2
		ORDER BY account_num
	`, code, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subdivision %s: %w", code, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan parcel: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read subdivision %s: %w", code, err)
	}

	return records, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecord reads one parcel row. NULL columns land as nil pointers.
func scanRecord(row scanner) (*Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID,
		&rec.SitusAddress,
		&rec.SubdivisionCode,
		&rec.Area,
		&rec.MarketValue,
		&rec.LandValue,
		&rec.YearBuilt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
