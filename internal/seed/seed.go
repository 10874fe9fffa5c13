// Package seed repopulates the database with the demo dataset: two
// households, their rooms and devices, and 30 days of synthetic hourly
// readings derived from fixed per-device daily patterns with ±20% random
// variation.  It runs once, offline, outside the request path.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hausenergie/energymon/internal/utils"
)

// demoUser is one seeded account.
type demoUser struct {
	username    string
	email       string
	password    string
	fullName    string
	birthday    string
	country     string
	city        string
	street      string
	houseNumber string
	zipCode     string
	people      int
	premium     int
}

// demoDevice places a device in a room and gives it a 24-hour kWh pattern
// indexed by hour of day.
type demoDevice struct {
	room    string
	name    string
	devType string
	pattern [24]float64
}

var demoUsers = []demoUser{
	{"lukas21", "lukas@example.com", "password123", "Lukas Reinhardt", "2002-07-12",
		"Germany", "Hamburg", "Ahrenfelder Str.", "54", "20257", 1, 0},
	{"sofiaM2", "sofia@example.com", "mypassword456", "Sofia Brandt", "1985-03-18",
		"Germany", "Berlin", "Prenzlauer Allee", "212", "10405", 4, 1},
}

// demoDevices maps each seeded username to its devices.  Rooms are created
// on first mention, preserving order.
var demoDevices = map[string][]demoDevice{
	"lukas21": {
		{"Living Room", "TV", "Electronics", [24]float64{0.09, 0.06, 0.05, 0.04, 0.03, 0.10, 0.12, 0.15, 0.18, 0.20, 0.22, 0.18, 0.10, 0.05, 0.02, 0.01, 0.01, 0.01, 0.01, 0.02, 0.03, 0.05, 0.07, 0.08}},
		{"Living Room", "PC", "Electronics", [24]float64{0.20, 0.15, 0.10, 0.05, 0.10, 0.25, 0.30, 0.35, 0.40, 0.45, 0.50, 0.40, 0.30, 0.20, 0.05, 0.02, 0.01, 0.01, 0.02, 0.05, 0.10, 0.15, 0.18, 0.20}},
		{"Living Room", "Fridge", "Appliance", flat(0.10)},
	},
	"sofiaM2": {
		{"Living Room", "TV", "Electronics", [24]float64{0.08, 0.05, 0.04, 0.04, 0.05, 0.08, 0.10, 0.12, 0.15, 0.20, 0.18, 0.15, 0.08, 0.04, 0.02, 0.01, 0.01, 0.01, 0.01, 0.02, 0.03, 0.05, 0.06, 0.07}},
		{"Kitchen", "Stove", "Appliance", sparse(map[int]float64{2: 0.20, 8: 0.25, 9: 0.20})},
		{"Kitchen", "Oven", "Appliance", sparse(map[int]float64{8: 0.50, 9: 0.40})},
		{"Sleeping Room", "Nightlight", "Light", sparse(span(10, 13, 0.02), span(14, 19, 0.03))},
		{"Sleeping Room", "AC", "Air Conditioner", sparse(map[int]float64{12: 0.20, 13: 0.20, 20: 0.15}, span(14, 19, 0.25))},
		{"Washroom", "Washing Machine", "Washer", sparse(map[int]float64{5: 0.50, 6: 0.30})},
	},
}

// days of hourly history generated per device.
const historyDays = 30

// Run wipes the demo tables and reinserts the dataset.  bcryptCost controls
// the password hashing; the synthetic readings cover the last historyDays
// days up to the current hour.
func Run(ctx context.Context, db *sql.DB, bcryptCost int) error {
	// Child rows first to satisfy the foreign keys.
	for _, table := range []string{"device_readings", "devices", "rooms", "refresh_tokens", "users"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	stmt, err := db.PrepareContext(ctx,
		"INSERT INTO device_readings (device_id, timestamp, kwh) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare readings insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	total := 0

	for _, u := range demoUsers {
		hash, err := utils.HashPassword(u.password, bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.username, err)
		}
		res, err := db.ExecContext(ctx,
			`INSERT INTO users
			   (username, email, password_hash, full_name, birthday,
			    country, city, street, house_number, zip_code, people_in_household, premium)
			 VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			u.username, u.email, hash, u.fullName, u.birthday,
			u.country, u.city, u.street, u.houseNumber, u.zipCode, u.people, u.premium)
		if err != nil {
			return fmt.Errorf("insert user %s: %w", u.username, err)
		}
		uid, _ := res.LastInsertId()

		roomIDs := map[string]int64{}
		for _, d := range demoDevices[u.username] {
			roomID, ok := roomIDs[d.room]
			if !ok {
				res, err := db.ExecContext(ctx,
					"INSERT INTO rooms (user_id, room_name) VALUES (?, ?)", uid, d.room)
				if err != nil {
					return fmt.Errorf("insert room %s: %w", d.room, err)
				}
				roomID, _ = res.LastInsertId()
				roomIDs[d.room] = roomID
			}
			res, err := db.ExecContext(ctx,
				"INSERT INTO devices (user_id, room_id, device_name, device_type) VALUES (?,?,?,?)",
				uid, roomID, d.name, d.devType)
			if err != nil {
				return fmt.Errorf("insert device %s: %w", d.name, err)
			}
			deviceID, _ := res.LastInsertId()

			n, err := insertHistory(ctx, stmt, deviceID, d.pattern, now)
			if err != nil {
				return fmt.Errorf("insert readings for %s: %w", d.name, err)
			}
			total += n
		}
	}

	log.Printf("seed: inserted %d readings for %d users", total, len(demoUsers))
	return nil
}

// insertHistory writes historyDays days of hourly readings for one device,
// varying each pattern value by ±20%.
func insertHistory(ctx context.Context, stmt *sql.Stmt, deviceID int64, pattern [24]float64, now time.Time) (int, error) {
	n := 0
	for day := historyDays - 1; day >= 0; day-- {
		base := now.AddDate(0, 0, -day)
		for hour := 0; hour < 24; hour++ {
			ts := time.Date(base.Year(), base.Month(), base.Day(), hour, 0, 0, 0, time.UTC)
			if ts.After(now) {
				continue
			}
			if _, err := stmt.ExecContext(ctx, deviceID, ts, vary(pattern[hour])); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

// vary applies a random ±20% factor and rounds to two decimals, matching
// the shape of real metered values.
func vary(v float64) float64 {
	factor := 0.8 + rand.Float64()*0.4 // 0.8 to 1.2
	return float64(int(v*factor*100+0.5)) / 100
}

// flat returns a pattern with the same value for every hour.
func flat(v float64) [24]float64 {
	var p [24]float64
	for i := range p {
		p[i] = v
	}
	return p
}

// sparse merges hour->value maps into a pattern that is zero elsewhere.
func sparse(ms ...map[int]float64) [24]float64 {
	var p [24]float64
	for _, m := range ms {
		for h, v := range m {
			p[h] = v
		}
	}
	return p
}

// span builds an hour->value map covering from..to inclusive.
func span(from, to int, v float64) map[int]float64 {
	m := make(map[int]float64, to-from+1)
	for h := from; h <= to; h++ {
		m[h] = v
	}
	return m
}
