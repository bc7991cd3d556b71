package entities

import "time"

// UserWallet holds a user's coin balance. Coins are global across servers:
// earned 1:1 with XP plus level-up bonuses, spent on shop ranks. The balance
// never goes negative; a purchase that would overdraw is rejected outright.
type UserWallet struct {
	UserID    int64     `db:"user_id"`
	Coins     int64     `db:"coins"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CanAfford reports whether the wallet covers the given price.
func (w *UserWallet) CanAfford(price int64) bool {
	return w.Coins >= price
}
