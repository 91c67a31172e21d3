// Package generator synthesizes messy order datasets.
//
// The output deliberately contains every defect class the cleaning pipeline
// corrects: near and exact duplicates, whitespace and case noise in names,
// missing and malformed emails, mixed phone and date formats, future dates,
// currency-formatted prices, non-positive quantities and misspelled
// categories and statuses. Generation is deterministic for a given seed and
// reference time.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// Config controls dataset generation.
type Config struct {
	Rows int
	Seed uint64

	// Now anchors future order dates. Zero means time.Now.
	Now time.Time
}

type productLine struct {
	category string
	variants [][]string
}

var products = []productLine{
	{"Electronics", [][]string{
		{"iPhone 13", "iphone 13", "IPHONE 13", "iPhone13", "Iphone 13"},
		{"Samsung Galaxy", "samsung galaxy", "SAMSUNG GALAXY", "SamsungGalaxy"},
		{"MacBook Pro", "macbook pro", "MacBook  Pro", "Macbook Pro"},
		{"AirPods", "airpods", "Air Pods", "AIRPODS"},
	}},
	{"Clothing", [][]string{
		{"Men's T-Shirt", "mens tshirt", "MEN'S T-SHIRT", "Mens T-shirt"},
		{"Jeans", "jeans", "JEANS", "Jean"},
		{"Running Shoes", "running shoes", "RUNNING SHOES", "RunningShoes"},
	}},
	{"Home & Garden", [][]string{
		{"Coffee Maker", "coffee maker", "COFFEE MAKER", "CoffeeMaker"},
		{"Vacuum Cleaner", "vacuum cleaner", "VacuumCleaner", "Vaccuum Cleaner"},
	}},
	{"Books", [][]string{
		{"Python Programming", "python programming", "PYTHON PROGRAMMING"},
		{"Data Science Handbook", "data science handbook", "DataScience Handbook"},
	}},
}

var statuses = [][]string{
	{"Pending", "pending", "PENDING", "Pnding", "P"},
	{"Shipped", "shipped", "SHIPPED", "Shippd", "Ship"},
	{"Delivered", "delivered", "DELIVERED", "Deliverd", "Complete"},
	{"Cancelled", "cancelled", "CANCELLED", "Canceled", "CNCLLD"},
}

var firstNames = []string{
	"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Lisa",
	"William", "Maria", "James", "Jennifer", "Richard", "Linda", "Thomas",
	"Christopher", "Jessica", "Daniel", "Michelle", "Matthew",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson", "Anderson",
	"Taylor", "Thomas", "Moore", "Jackson", "Martin", "Lee",
}

var dateBase = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

// Generate builds a messy order table.
func Generate(cfg Config) *orders.Table {
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	g := &gen{
		rng:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		now:   now,
		money: message.NewPrinter(language.English),
	}

	t := orders.NewTable()
	t.Orders = make([]orders.Order, 0, cfg.Rows)
	for i := 0; i < cfg.Rows; i++ {
		if i > 20 && g.chance(0.15) {
			t.Orders = append(t.Orders, g.duplicate(t.Orders, i))
			continue
		}
		t.Orders = append(t.Orders, g.order(i))
	}
	return t
}

type gen struct {
	rng   *rand.Rand
	now   time.Time
	money *message.Printer
}

func (g *gen) chance(p float64) bool {
	return g.rng.Float64() < p
}

// between returns a uniform integer in [lo, hi].
func (g *gen) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func pick[T any](g *gen, items []T) T {
	return items[g.rng.IntN(len(items))]
}

// duplicate copies one of the previous 50 rows, sometimes with the noise a
// resubmitted order would carry.
func (g *gen) duplicate(rows []orders.Order, i int) orders.Order {
	src := rows[g.between(max(0, i-50), i-1)]
	o := src
	o.Extra = nil

	if g.chance(0.5) && o.CustomerName.Valid {
		o.Set(orders.ColCustomerName, strings.TrimSpace(o.CustomerName.String))
	}
	if g.chance(0.3) && o.Email.Valid {
		o.Set(orders.ColEmail, strings.ToUpper(o.Email.String))
	}
	return o
}

func (g *gen) order(i int) orders.Order {
	first := pick(g, firstNames)
	last := pick(g, lastNames)

	var o orders.Order
	o.Set(orders.ColOrderID, g.orderID(1000+i))
	o.Set(orders.ColCustomerName, g.customerName(first, last))
	o.Set(orders.ColEmail, g.email(first, last))
	o.Set(orders.ColPhone, g.phone())
	o.Set(orders.ColOrderDate, g.orderDate())

	line := pick(g, products)
	o.Set(orders.ColProductName, pick(g, pick(g, line.variants)))
	o.Set(orders.ColCategory, g.category(line.category))

	o.Set(orders.ColQuantity, g.quantity())
	o.Set(orders.ColPrice, g.price())
	o.Set(orders.ColStatus, pick(g, pick(g, statuses)))
	return o
}

func (g *gen) orderID(n int) string {
	formats := []string{"ORD%d", "#%d", "ORD-%d", "%d", "order%d"}
	return fmt.Sprintf(pick(g, formats), n)
}

func (g *gen) customerName(first, last string) string {
	if !g.chance(0.4) {
		return first + " " + last
	}
	return pick(g, []string{
		first + " " + last,
		"  " + first + "  " + last + "  ",
		strings.ToUpper(first) + " " + strings.ToUpper(last),
		strings.ToLower(first) + " " + strings.ToLower(last),
		first + "\t" + last,
	})
}

func (g *gen) email(first, last string) string {
	first, last = strings.ToLower(first), strings.ToLower(last)
	switch {
	case g.chance(0.15):
		return ""
	case g.chance(0.12):
		return pick(g, []string{
			first + "." + last,
			first + "@",
			"@" + last + ".com",
			first + " " + last + "@email.com",
			"invalidemail",
		})
	}

	base := first + "." + last + "@example.com"
	if !g.chance(0.3) {
		return base
	}
	if g.chance(0.5) {
		return strings.ToUpper(base)
	}
	return "  " + base + "  "
}

func (g *gen) phone() string {
	if g.chance(0.20) {
		return ""
	}
	area := g.between(200, 999)
	prefix := g.between(200, 999)
	line := g.between(1000, 9999)
	formats := []string{
		"(%d)-%d-%d",
		"%d-%d-%d",
		"%d%d%d",
		"(%d) %d-%d",
		"+1-%d-%d-%d",
		"%d.%d.%d",
	}
	return fmt.Sprintf(pick(g, formats), area, prefix, line)
}

func (g *gen) orderDate() string {
	switch {
	case g.chance(0.05):
		return g.now.AddDate(0, 0, g.between(1, 100)).Format("01/02/2006")
	case g.chance(0.03):
		return ""
	}
	d := dateBase.AddDate(0, 0, g.between(0, 400))
	return d.Format(pick(g, []string{
		"01/02/2006",
		"02-01-2006",
		"2006-01-02",
		"Jan 02, 2006",
		"02 January 2006",
	}))
}

func (g *gen) category(name string) string {
	if !g.chance(0.3) {
		return name
	}
	return pick(g, []string{
		name,
		strings.ToUpper(name),
		strings.ToLower(name),
		name[:4],
		strings.ReplaceAll(name, "&", "and"),
	})
}

func (g *gen) quantity() string {
	switch {
	case g.chance(0.05):
		return strconv.Itoa(-g.between(1, 5))
	case g.chance(0.05):
		return "0"
	case g.chance(0.08):
		return strconv.Itoa(g.between(1, 10)) + ".0"
	}
	return strconv.Itoa(g.between(1, 10))
}

func (g *gen) price() string {
	base := float64(g.between(999, 149999)) / 100
	plain := strconv.FormatFloat(base, 'f', -1, 64)
	switch {
	case g.chance(0.25):
		return "$" + plain
	case g.chance(0.15):
		return "$" + g.money.Sprintf("%.2f", base)
	case g.chance(0.10):
		return " " + plain + " "
	case g.chance(0.05):
		return ""
	}
	return plain
}
