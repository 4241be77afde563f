// Package market serves curated regional crop market data and growing
// suggestions.
package market

// Crop is one market entry for a region.
type Crop struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Price       string  `json:"price"`
	Trend       string  `json:"trend"`
	Change      string  `json:"change"`
	MarketIndex int     `json:"marketIndex"`
	ChangeValue float64 `json:"changeValue"`
}

// RegionData is the market snapshot returned for a region. Unknown regions
// get empty, non-nil slices.
type RegionData struct {
	Crops       []Crop   `json:"crops"`
	Suggestions []string `json:"suggestions"`
}

// ForRegion returns the snapshot for the named region.
func ForRegion(region string) RegionData {
	crops, ok := cropsByRegion[region]
	if !ok {
		crops = []Crop{}
	}
	suggestions, ok := suggestionsByRegion[region]
	if !ok {
		suggestions = []string{}
	}
	return RegionData{Crops: crops, Suggestions: suggestions}
}

// Regions lists the regions with curated data.
func Regions() []string {
	return []string{
		"South Asia", "North America", "Africa", "Europe",
		"South America", "Australia", "East Asia", "Middle East",
	}
}

var cropsByRegion = map[string][]Crop{
	"South Asia": {
		{Name: "Rice", Type: "Grain", Price: "$320/ton", Trend: "up", Change: "+2.1%", MarketIndex: 320, ChangeValue: 2.1},
		{Name: "Wheat", Type: "Grain", Price: "$280/ton", Trend: "down", Change: "-1.3%", MarketIndex: 280, ChangeValue: -1.3},
		{Name: "Sugarcane", Type: "Cash Crop", Price: "$40/ton", Trend: "up", Change: "+0.8%", MarketIndex: 40, ChangeValue: 0.8},
		{Name: "Cotton", Type: "Fiber", Price: "$1.60/kg", Trend: "down", Change: "-0.5%", MarketIndex: 160, ChangeValue: -0.5},
		{Name: "Maize", Type: "Grain", Price: "$210/ton", Trend: "up", Change: "+1.7%", MarketIndex: 210, ChangeValue: 1.7},
		{Name: "Millets", Type: "Grain", Price: "$190/ton", Trend: "up", Change: "+0.9%", MarketIndex: 190, ChangeValue: 0.9},
		{Name: "Pulses", Type: "Legume", Price: "$650/ton", Trend: "down", Change: "-2.0%", MarketIndex: 650, ChangeValue: -2.0},
		{Name: "Tea", Type: "Beverage", Price: "$2.80/kg", Trend: "up", Change: "+1.2%", MarketIndex: 280, ChangeValue: 1.2},
		{Name: "Jute", Type: "Fiber", Price: "$0.45/kg", Trend: "down", Change: "-0.7%", MarketIndex: 45, ChangeValue: -0.7},
		{Name: "Barley", Type: "Grain", Price: "$230/ton", Trend: "up", Change: "+0.5%", MarketIndex: 230, ChangeValue: 0.5},
	},
	"North America": {
		{Name: "Corn", Type: "Grain", Price: "$250/ton", Trend: "up", Change: "+1.5%", MarketIndex: 250, ChangeValue: 1.5},
		{Name: "Soybeans", Type: "Legume", Price: "$520/ton", Trend: "down", Change: "-0.8%", MarketIndex: 520, ChangeValue: -0.8},
		{Name: "Wheat", Type: "Grain", Price: "$300/ton", Trend: "up", Change: "+0.9%", MarketIndex: 300, ChangeValue: 0.9},
		{Name: "Cotton", Type: "Fiber", Price: "$1.75/kg", Trend: "down", Change: "-1.1%", MarketIndex: 175, ChangeValue: -1.1},
		{Name: "Sorghum", Type: "Grain", Price: "$210/ton", Trend: "up", Change: "+2.3%", MarketIndex: 210, ChangeValue: 2.3},
		{Name: "Barley", Type: "Grain", Price: "$240/ton", Trend: "down", Change: "-0.6%", MarketIndex: 240, ChangeValue: -0.6},
		{Name: "Oats", Type: "Grain", Price: "$180/ton", Trend: "up", Change: "+1.0%", MarketIndex: 180, ChangeValue: 1.0},
		{Name: "Rice", Type: "Grain", Price: "$340/ton", Trend: "up", Change: "+0.7%", MarketIndex: 340, ChangeValue: 0.7},
		{Name: "Peanuts", Type: "Legume", Price: "$1.20/kg", Trend: "down", Change: "-0.4%", MarketIndex: 120, ChangeValue: -0.4},
		{Name: "Sunflower", Type: "Oilseed", Price: "$420/ton", Trend: "up", Change: "+1.8%", MarketIndex: 420, ChangeValue: 1.8},
	},
	"Africa": {
		{Name: "Maize", Type: "Grain", Price: "$200/ton", Trend: "up", Change: "+2.0%", MarketIndex: 200, ChangeValue: 2.0},
		{Name: "Cassava", Type: "Root", Price: "$90/ton", Trend: "down", Change: "-0.9%", MarketIndex: 90, ChangeValue: -0.9},
		{Name: "Yams", Type: "Root", Price: "$110/ton", Trend: "up", Change: "+1.1%", MarketIndex: 110, ChangeValue: 1.1},
		{Name: "Sorghum", Type: "Grain", Price: "$180/ton", Trend: "up", Change: "+0.6%", MarketIndex: 180, ChangeValue: 0.6},
		{Name: "Millets", Type: "Grain", Price: "$170/ton", Trend: "down", Change: "-0.5%", MarketIndex: 170, ChangeValue: -0.5},
		{Name: "Rice", Type: "Grain", Price: "$310/ton", Trend: "up", Change: "+1.3%", MarketIndex: 310, ChangeValue: 1.3},
		{Name: "Wheat", Type: "Grain", Price: "$270/ton", Trend: "down", Change: "-1.2%", MarketIndex: 270, ChangeValue: -1.2},
		{Name: "Sugarcane", Type: "Cash Crop", Price: "$38/ton", Trend: "up", Change: "+0.4%", MarketIndex: 38, ChangeValue: 0.4},
		{Name: "Coffee", Type: "Beverage", Price: "$3.10/kg", Trend: "up", Change: "+2.2%", MarketIndex: 310, ChangeValue: 2.2},
		{Name: "Cocoa", Type: "Beverage", Price: "$2.50/kg", Trend: "down", Change: "-0.7%", MarketIndex: 250, ChangeValue: -0.7},
	},
	"Europe": {
		{Name: "Wheat", Type: "Grain", Price: "$320/ton", Trend: "up", Change: "+1.2%", MarketIndex: 320, ChangeValue: 1.2},
		{Name: "Barley", Type: "Grain", Price: "$250/ton", Trend: "down", Change: "-0.8%", MarketIndex: 250, ChangeValue: -0.8},
		{Name: "Oats", Type: "Grain", Price: "$200/ton", Trend: "up", Change: "+0.6%", MarketIndex: 200, ChangeValue: 0.6},
		{Name: "Rye", Type: "Grain", Price: "$210/ton", Trend: "up", Change: "+0.9%", MarketIndex: 210, ChangeValue: 0.9},
		{Name: "Potatoes", Type: "Root", Price: "$90/ton", Trend: "down", Change: "-1.0%", MarketIndex: 90, ChangeValue: -1.0},
		{Name: "Sugar Beet", Type: "Root", Price: "$45/ton", Trend: "up", Change: "+0.3%", MarketIndex: 45, ChangeValue: 0.3},
		{Name: "Maize", Type: "Grain", Price: "$230/ton", Trend: "up", Change: "+1.4%", MarketIndex: 230, ChangeValue: 1.4},
		{Name: "Rapeseed", Type: "Oilseed", Price: "$410/ton", Trend: "down", Change: "-0.5%", MarketIndex: 410, ChangeValue: -0.5},
		{Name: "Sunflower", Type: "Oilseed", Price: "$430/ton", Trend: "up", Change: "+1.7%", MarketIndex: 430, ChangeValue: 1.7},
		{Name: "Grapes", Type: "Fruit", Price: "$1.80/kg", Trend: "down", Change: "-0.6%", MarketIndex: 180, ChangeValue: -0.6},
	},
	"South America": {
		{Name: "Soybeans", Type: "Legume", Price: "$500/ton", Trend: "up", Change: "+2.0%", MarketIndex: 500, ChangeValue: 2.0},
		{Name: "Coffee", Type: "Beverage", Price: "$3.20/kg", Trend: "down", Change: "-0.9%", MarketIndex: 320, ChangeValue: -0.9},
		{Name: "Sugarcane", Type: "Cash Crop", Price: "$42/ton", Trend: "up", Change: "+0.7%", MarketIndex: 42, ChangeValue: 0.7},
		{Name: "Maize", Type: "Grain", Price: "$220/ton", Trend: "up", Change: "+1.1%", MarketIndex: 220, ChangeValue: 1.1},
		{Name: "Wheat", Type: "Grain", Price: "$290/ton", Trend: "down", Change: "-1.4%", MarketIndex: 290, ChangeValue: -1.4},
		{Name: "Rice", Type: "Grain", Price: "$330/ton", Trend: "up", Change: "+0.8%", MarketIndex: 330, ChangeValue: 0.8},
		{Name: "Barley", Type: "Grain", Price: "$210/ton", Trend: "down", Change: "-0.6%", MarketIndex: 210, ChangeValue: -0.6},
		{Name: "Cotton", Type: "Fiber", Price: "$1.65/kg", Trend: "up", Change: "+0.5%", MarketIndex: 165, ChangeValue: 0.5},
		{Name: "Cocoa", Type: "Beverage", Price: "$2.60/kg", Trend: "down", Change: "-0.7%", MarketIndex: 260, ChangeValue: -0.7},
		{Name: "Banana", Type: "Fruit", Price: "$0.35/kg", Trend: "up", Change: "+1.3%", MarketIndex: 35, ChangeValue: 1.3},
	},
	"Australia": {
		{Name: "Wheat", Type: "Grain", Price: "$310/ton", Trend: "up", Change: "+1.0%", MarketIndex: 310, ChangeValue: 1.0},
		{Name: "Barley", Type: "Grain", Price: "$240/ton", Trend: "down", Change: "-0.7%", MarketIndex: 240, ChangeValue: -0.7},
		{Name: "Canola", Type: "Oilseed", Price: "$420/ton", Trend: "up", Change: "+1.5%", MarketIndex: 420, ChangeValue: 1.5},
		{Name: "Lentils", Type: "Legume", Price: "$600/ton", Trend: "down", Change: "-0.8%", MarketIndex: 600, ChangeValue: -0.8},
		{Name: "Chickpeas", Type: "Legume", Price: "$650/ton", Trend: "up", Change: "+2.2%", MarketIndex: 650, ChangeValue: 2.2},
		{Name: "Oats", Type: "Grain", Price: "$190/ton", Trend: "up", Change: "+0.6%", MarketIndex: 190, ChangeValue: 0.6},
		{Name: "Sorghum", Type: "Grain", Price: "$210/ton", Trend: "down", Change: "-0.5%", MarketIndex: 210, ChangeValue: -0.5},
		{Name: "Cotton", Type: "Fiber", Price: "$1.70/kg", Trend: "up", Change: "+0.9%", MarketIndex: 170, ChangeValue: 0.9},
		{Name: "Sugarcane", Type: "Cash Crop", Price: "$39/ton", Trend: "down", Change: "-0.4%", MarketIndex: 39, ChangeValue: -0.4},
		{Name: "Grapes", Type: "Fruit", Price: "$1.90/kg", Trend: "up", Change: "+1.1%", MarketIndex: 190, ChangeValue: 1.1},
	},
	"East Asia": {
		{Name: "Rice", Type: "Grain", Price: "$340/ton", Trend: "up", Change: "+1.4%", MarketIndex: 340, ChangeValue: 1.4},
		{Name: "Wheat", Type: "Grain", Price: "$295/ton", Trend: "down", Change: "-0.6%", MarketIndex: 295, ChangeValue: -0.6},
		{Name: "Soybeans", Type: "Legume", Price: "$510/ton", Trend: "up", Change: "+1.9%", MarketIndex: 510, ChangeValue: 1.9},
		{Name: "Barley", Type: "Grain", Price: "$220/ton", Trend: "down", Change: "-0.7%", MarketIndex: 220, ChangeValue: -0.7},
		{Name: "Corn", Type: "Grain", Price: "$260/ton", Trend: "up", Change: "+1.2%", MarketIndex: 260, ChangeValue: 1.2},
		{Name: "Tea", Type: "Beverage", Price: "$2.90/kg", Trend: "up", Change: "+0.8%", MarketIndex: 290, ChangeValue: 0.8},
		{Name: "Cotton", Type: "Fiber", Price: "$1.60/kg", Trend: "down", Change: "-0.5%", MarketIndex: 160, ChangeValue: -0.5},
		{Name: "Sweet Potato", Type: "Root", Price: "$120/ton", Trend: "up", Change: "+1.0%", MarketIndex: 120, ChangeValue: 1.0},
		{Name: "Peanuts", Type: "Legume", Price: "$1.10/kg", Trend: "up", Change: "+0.6%", MarketIndex: 110, ChangeValue: 0.6},
		{Name: "Millets", Type: "Grain", Price: "$180/ton", Trend: "down", Change: "-0.4%", MarketIndex: 180, ChangeValue: -0.4},
	},
	"Middle East": {
		{Name: "Wheat", Type: "Grain", Price: "$305/ton", Trend: "up", Change: "+1.3%", MarketIndex: 305, ChangeValue: 1.3},
		{Name: "Barley", Type: "Grain", Price: "$235/ton", Trend: "down", Change: "-0.7%", MarketIndex: 235, ChangeValue: -0.7},
		{Name: "Dates", Type: "Fruit", Price: "$1.50/kg", Trend: "up", Change: "+2.0%", MarketIndex: 150, ChangeValue: 2.0},
		{Name: "Olives", Type: "Fruit", Price: "$2.10/kg", Trend: "down", Change: "-0.5%", MarketIndex: 210, ChangeValue: -0.5},
		{Name: "Citrus", Type: "Fruit", Price: "$0.80/kg", Trend: "up", Change: "+1.1%", MarketIndex: 80, ChangeValue: 1.1},
		{Name: "Grapes", Type: "Fruit", Price: "$1.70/kg", Trend: "down", Change: "-0.6%", MarketIndex: 170, ChangeValue: -0.6},
		{Name: "Tomatoes", Type: "Vegetable", Price: "$0.60/kg", Trend: "up", Change: "+0.9%", MarketIndex: 60, ChangeValue: 0.9},
		{Name: "Cucumbers", Type: "Vegetable", Price: "$0.55/kg", Trend: "down", Change: "-0.3%", MarketIndex: 55, ChangeValue: -0.3},
		{Name: "Onions", Type: "Vegetable", Price: "$0.40/kg", Trend: "up", Change: "+0.7%", MarketIndex: 40, ChangeValue: 0.7},
		{Name: "Pistachios", Type: "Nut", Price: "$8.00/kg", Trend: "up", Change: "+1.5%", MarketIndex: 800, ChangeValue: 1.5},
	},
}

var suggestionsByRegion = map[string][]string{
	"South Asia": {
		"Rotate rice and wheat to maintain soil fertility.",
		"Monitor for pests during the monsoon season.",
		"Consider drip irrigation for sugarcane fields.",
	},
	"North America": {
		"Scout for corn rootworm in maize fields.",
		"Plant cover crops after soybean harvest.",
		"Monitor cotton for bollworm infestations.",
	},
	"Africa": {
		"Practice intercropping maize and legumes.",
		"Store yams in cool, dry places to prevent rot.",
		"Watch for armyworm outbreaks in sorghum.",
	},
	"Europe": {
		"Rotate grains with root crops for better yields.",
		"Monitor potatoes for late blight.",
		"Use certified seeds for oilseed crops.",
	},
	"South America": {
		"Scout for soybean rust in wet conditions.",
		"Harvest coffee cherries at peak ripeness.",
		"Apply organic mulch to banana plantations.",
	},
	"Australia": {
		"Monitor wheat for rust diseases.",
		"Use minimum tillage for lentils and chickpeas.",
		"Irrigate grapes during dry spells.",
	},
	"East Asia": {
		"Flood rice paddies at transplanting.",
		"Rotate soybeans with grains for soil health.",
		"Prune tea bushes after harvest.",
	},
	"Middle East": {
		"Irrigate olive trees deeply but infrequently.",
		"Harvest dates when fully ripe.",
		"Use drip irrigation for vegetable crops.",
	},
}
