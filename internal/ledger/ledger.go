// Package ledger keeps the household purse: coin balance, idle accrual,
// the daily sign-in streak and the first-visit-of-the-day bonus.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"kittyhaven/internal/clock"
)

const (
	DefaultInterval = time.Minute

	SignInBase      = 20
	SignInPerDay    = 10
	SignInMaxReward = 100

	DailyBonusCoins = 100
	DailyBonusFish  = 3
)

var (
	ErrAlreadySignedIn = errors.New("already signed in today")
	ErrInvalidAmount   = errors.New("amount must be positive")
)

type InsufficientCoinsError struct {
	Need int
	Have int
}

func (e InsufficientCoinsError) Error() string {
	return fmt.Sprintf("not enough coins: need %d, have %d", e.Need, e.Have)
}

type Ledger struct {
	interval time.Duration

	coins          int
	pending        int
	totalEarned    int
	lastCoinTime   time.Time
	signInDays     int
	lastSignIn     time.Time
	signedToday    bool
	lastDailyBonus time.Time
}

// New returns a ledger holding coins whose accrual clock starts at now.
func New(coins int, interval time.Duration, now time.Time) *Ledger {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ledger{interval: interval, coins: max(coins, 0), lastCoinTime: now}
}

func (l *Ledger) Coins() int              { return l.coins }
func (l *Ledger) Pending() int            { return l.pending }
func (l *Ledger) TotalEarned() int        { return l.totalEarned }
func (l *Ledger) Streak() int             { return l.signInDays }
func (l *Ledger) SignedToday() bool       { return l.signedToday }
func (l *Ledger) LastSignIn() time.Time   { return l.lastSignIn }
func (l *Ledger) Interval() time.Duration { return l.interval }

// Accrue converts whole intervals elapsed since the last accrual into pending
// coins, keeping the partial interval for next time. It returns the coins added.
func (l *Ledger) Accrue(now time.Time) int {
	elapsed := now.Sub(l.lastCoinTime)
	if elapsed < l.interval {
		if elapsed < 0 {
			l.lastCoinTime = now
		}
		return 0
	}
	n := int(elapsed / l.interval)
	l.pending += n
	l.lastCoinTime = now.Add(-(elapsed % l.interval))
	return n
}

// ClaimPending moves pending coins into the balance.
func (l *Ledger) ClaimPending() int {
	n := l.pending
	l.pending = 0
	l.credit(n)
	return n
}

func (l *Ledger) credit(n int) {
	l.coins += n
	l.totalEarned += n
}

// Credit adds earned coins.
func (l *Ledger) Credit(n int) error {
	if n <= 0 {
		return ErrInvalidAmount
	}
	l.credit(n)
	return nil
}

// Refund returns coins from a failed purchase; refunds are not earnings.
func (l *Ledger) Refund(n int) {
	if n > 0 {
		l.coins += n
	}
}

// Spend deducts n or fails leaving the balance unchanged.
func (l *Ledger) Spend(n int) error {
	if n < 0 {
		return ErrInvalidAmount
	}
	if n > l.coins {
		return InsufficientCoinsError{Need: n, Have: l.coins}
	}
	l.coins -= n
	return nil
}

// SignInReward is the coin reward for a given streak length.
func SignInReward(streak int) int {
	return min(SignInMaxReward, SignInBase+streak*SignInPerDay)
}

// SignIn records today's visit. Missing a day resets the streak.
func (l *Ledger) SignIn(now time.Time) (int, error) {
	l.RefreshDay(now)
	if l.signedToday {
		return 0, ErrAlreadySignedIn
	}
	if l.lastSignIn.IsZero() || clock.DaysBetween(l.lastSignIn, now) > 1 {
		l.signInDays = 0
	}
	l.signInDays++
	reward := SignInReward(l.signInDays)
	l.credit(reward)
	l.signedToday = true
	l.lastSignIn = clock.DayStart(now)
	return reward, nil
}

// RefreshDay clears the signed-today flag once the UTC day has moved on.
func (l *Ledger) RefreshDay(now time.Time) bool {
	if !l.signedToday || l.lastSignIn.IsZero() || clock.DaysBetween(l.lastSignIn, now) < 1 {
		return false
	}
	l.signedToday = false
	return true
}

// DailyBonus credits the first-visit reward once per UTC day. It reports
// whether it was granted; the caller hands out DailyBonusFish.
func (l *Ledger) DailyBonus(now time.Time) bool {
	day := clock.DayStart(now)
	if !l.lastDailyBonus.Before(day) {
		return false
	}
	l.lastDailyBonus = day
	l.credit(DailyBonusCoins)
	return true
}

type Snapshot struct {
	Coins          int       `json:"coins"`
	Pending        int       `json:"pending_coins"`
	TotalEarned    int       `json:"total_earned"`
	LastCoinTime   time.Time `json:"last_coin_time"`
	SignInDays     int       `json:"sign_in_days"`
	LastSignIn     time.Time `json:"last_sign_in_date"`
	SignedToday    bool      `json:"has_signed_today"`
	LastDailyBonus time.Time `json:"last_daily_bonus"`
}

func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Coins:          l.coins,
		Pending:        l.pending,
		TotalEarned:    l.totalEarned,
		LastCoinTime:   l.lastCoinTime,
		SignInDays:     l.signInDays,
		LastSignIn:     l.lastSignIn,
		SignedToday:    l.signedToday,
		LastDailyBonus: l.lastDailyBonus,
	}
}

// Restore loads s. A zero LastCoinTime restarts accrual at now.
func (l *Ledger) Restore(s Snapshot, now time.Time) {
	l.coins = max(s.Coins, 0)
	l.pending = max(s.Pending, 0)
	l.totalEarned = max(s.TotalEarned, 0)
	l.lastCoinTime = s.LastCoinTime
	if l.lastCoinTime.IsZero() {
		l.lastCoinTime = now
	}
	l.signInDays = max(s.SignInDays, 0)
	l.lastSignIn = s.LastSignIn
	l.signedToday = s.SignedToday
	l.lastDailyBonus = s.LastDailyBonus
}
