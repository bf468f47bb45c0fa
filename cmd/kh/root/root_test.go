package root

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

type cli struct {
	dir string
}

func newCLI(t *testing.T) cli {
	t.Helper()
	return cli{dir: t.TempDir()}
}

func (c cli) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--db", filepath.Join(c.dir, "kh.db"),
		"--config", filepath.Join(c.dir, "missing.toml"),
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (c cli) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := c.run(t, args...)
	if err != nil {
		t.Fatalf("kh %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestStatusOnFreshHousehold(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun(t, "status")
	for _, want := range []string{"Household", "Daily visit", "200", "stamina"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status output missing %q:\n%s", want, out)
		}
	}
}

func TestShopNumberBuysItem(t *testing.T) {
	c := newCLI(t)
	c.mustRun(t, "shop", "1")
	out := c.mustRun(t, "bag")
	// 5 starting fish, 3 from the daily visit and 1 bought.
	if !strings.Contains(out, "Fish x9") {
		t.Fatalf("bag output missing Fish x9:\n%s", out)
	}
}

func TestShopRejectsBadNumber(t *testing.T) {
	c := newCLI(t)
	if _, err := c.run(t, "shop", "99"); err == nil {
		t.Fatalf("shop 99 succeeded, want error")
	}
}

func TestBuyUnknownItemIsReported(t *testing.T) {
	c := newCLI(t)
	out, err := c.run(t, "buy", "tuna_cake")
	var r reportedError
	if !errors.As(err, &r) {
		t.Fatalf("err=%v, want reported error", err)
	}
	if !strings.Contains(out, "tuna_cake") {
		t.Fatalf("notification missing item id:\n%s", out)
	}
}

func TestSignInTwiceIsNotAnError(t *testing.T) {
	c := newCLI(t)
	c.mustRun(t, "signin")
	out := c.mustRun(t, "signin")
	if !strings.Contains(out, "Already signed in") {
		t.Fatalf("second signin output=%q", out)
	}
}

func TestClaimAllAfterSignIn(t *testing.T) {
	c := newCLI(t)
	c.mustRun(t, "signin")
	c.mustRun(t, "claim", "--all")
	out := c.mustRun(t, "tasks")
	if !strings.Contains(out, "claimed") {
		t.Fatalf("tasks output shows nothing claimed:\n%s", out)
	}
}

func TestRestoreNeedsTwoSaves(t *testing.T) {
	c := newCLI(t)
	c.mustRun(t, "status")
	if _, err := c.run(t, "restore"); err == nil {
		t.Fatalf("restore with one save succeeded, want error")
	}
	c.mustRun(t, "rename", "Biscuit")
	c.mustRun(t, "restore")
	out := c.mustRun(t, "status")
	if strings.Contains(out, "Biscuit") {
		t.Fatalf("rename survived restore:\n%s", out)
	}
}

func TestAdoptAndSelect(t *testing.T) {
	c := newCLI(t)
	// A fresh household holds 200 coins, less than the adoption fee.
	if _, err := c.run(t, "adopt", "Pip"); err == nil {
		t.Fatalf("adopt without enough coins succeeded")
	}
	if _, err := c.run(t, "select", "2"); err == nil {
		t.Fatalf("select 2 with one cat succeeded")
	}
	out := c.mustRun(t, "select", "1")
	if !strings.Contains(out, "Selected") {
		t.Fatalf("select output=%q", out)
	}
}

func TestBuyHugeQuantityIsRejected(t *testing.T) {
	c := newCLI(t)
	if _, err := c.run(t, "buy", "fish", "1844674407370955162"); err == nil {
		t.Fatalf("buying an overflowing quantity succeeded")
	}
	out := c.mustRun(t, "bag")
	if !strings.Contains(out, "Fish x8") {
		t.Fatalf("bag changed by a rejected purchase:\n%s", out)
	}
	out = c.mustRun(t, "status")
	if !strings.Contains(out, "200") {
		t.Fatalf("coins changed by a rejected purchase:\n%s", out)
	}
}
