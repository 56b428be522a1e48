package board

import "errors"

type SpaceType string

const (
	Go             SpaceType = "go"
	Property       SpaceType = "property"
	Railroad       SpaceType = "railroad"
	Utility        SpaceType = "utility"
	Chance         SpaceType = "chance"
	CommunityChest SpaceType = "community_chest"
	Tax            SpaceType = "tax"
	Jail           SpaceType = "jail"
	FreeParking    SpaceType = "free_parking"
	GoToJail       SpaceType = "go_to_jail"
)

type Space struct {
	Name       string    `json:"name"`
	Type       SpaceType `json:"type"`
	PropertyId int       `json:"property_id"` // -1 if not ownable
	TaxAmount  int       `json:"tax_amount"`
}

type PropertyData struct {
	Name      string    `json:"name"`
	Group     string    `json:"group"` // "" for railroads and utilities
	Price     int       `json:"price"`
	Rents     []int     `json:"rents"`
	HouseCost int       `json:"house_cost"`
	Mortgage  int       `json:"mortgage"`
	Type      SpaceType `json:"type"`
}

const (
	Size                 = 40
	StartCash            = 1500
	GoSalary             = 200
	JailFine             = 50
	JailPosition         = 10
	HouseSellValue       = 0.5
	MortgageInterestRate = 0.1
	MaxHouses            = 32
	MaxHotels            = 12
)

var Spaces = [Size]Space{
	{"GO", Go, -1, 0},
	{"Mediterranean Avenue", Property, 1, 0},
	{"Community Chest", CommunityChest, -1, 0},
	{"Baltic Avenue", Property, 3, 0},
	{"Income Tax", Tax, -1, 200},
	{"Reading Railroad", Railroad, 5, 0},
	{"Oriental Avenue", Property, 6, 0},
	{"Chance", Chance, -1, 0},
	{"Vermont Avenue", Property, 8, 0},
	{"Connecticut Avenue", Property, 9, 0},
	{"Jail / Just Visiting", Jail, -1, 0},
	{"St. Charles Place", Property, 11, 0},
	{"Electric Company", Utility, 12, 0},
	{"States Avenue", Property, 13, 0},
	{"Virginia Avenue", Property, 14, 0},
	{"Pennsylvania Railroad", Railroad, 15, 0},
	{"St. James Place", Property, 16, 0},
	{"Community Chest", CommunityChest, -1, 0},
	{"Tennessee Avenue", Property, 18, 0},
	{"New York Avenue", Property, 19, 0},
	{"Free Parking", FreeParking, -1, 0},
	{"Kentucky Avenue", Property, 21, 0},
	{"Chance", Chance, -1, 0},
	{"Indiana Avenue", Property, 23, 0},
	{"Illinois Avenue", Property, 24, 0},
	{"B. & O. Railroad", Railroad, 25, 0},
	{"Atlantic Avenue", Property, 26, 0},
	{"Ventnor Avenue", Property, 27, 0},
	{"Water Works", Utility, 28, 0},
	{"Marvin Gardens", Property, 29, 0},
	{"Go To Jail", GoToJail, -1, 0},
	{"Pacific Avenue", Property, 31, 0},
	{"North Carolina Avenue", Property, 32, 0},
	{"Community Chest", CommunityChest, -1, 0},
	{"Pennsylvania Avenue", Property, 34, 0},
	{"Short Line", Railroad, 35, 0},
	{"Chance", Chance, -1, 0},
	{"Park Place", Property, 37, 0},
	{"Luxury Tax", Tax, -1, 100},
	{"Boardwalk", Property, 39, 0},
}

var Properties = map[int]PropertyData{
	1:  {"Mediterranean Avenue", "brown", 60, []int{2, 10, 30, 90, 160, 250}, 50, 30, Property},
	3:  {"Baltic Avenue", "brown", 60, []int{4, 20, 60, 180, 320, 450}, 50, 30, Property},
	5:  {"Reading Railroad", "", 200, []int{25, 50, 100, 200}, 0, 100, Railroad},
	6:  {"Oriental Avenue", "light_blue", 100, []int{6, 30, 90, 270, 400, 550}, 50, 50, Property},
	8:  {"Vermont Avenue", "light_blue", 100, []int{6, 30, 90, 270, 400, 550}, 50, 50, Property},
	9:  {"Connecticut Avenue", "light_blue", 120, []int{8, 40, 100, 300, 450, 600}, 50, 60, Property},
	11: {"St. Charles Place", "pink", 140, []int{10, 50, 150, 450, 625, 750}, 100, 70, Property},
	12: {"Electric Company", "", 150, []int{4, 10}, 0, 75, Utility},
	13: {"States Avenue", "pink", 140, []int{10, 50, 150, 450, 625, 750}, 100, 70, Property},
	14: {"Virginia Avenue", "pink", 160, []int{12, 60, 180, 500, 700, 900}, 100, 80, Property},
	15: {"Pennsylvania Railroad", "", 200, []int{25, 50, 100, 200}, 0, 100, Railroad},
	16: {"St. James Place", "orange", 180, []int{14, 70, 200, 550, 750, 950}, 100, 90, Property},
	18: {"Tennessee Avenue", "orange", 180, []int{14, 70, 200, 550, 750, 950}, 100, 90, Property},
	19: {"New York Avenue", "orange", 200, []int{16, 80, 220, 600, 800, 1000}, 100, 100, Property},
	21: {"Kentucky Avenue", "red", 220, []int{18, 90, 250, 700, 875, 1050}, 150, 110, Property},
	23: {"Indiana Avenue", "red", 220, []int{18, 90, 250, 700, 875, 1050}, 150, 110, Property},
	24: {"Illinois Avenue", "red", 240, []int{20, 100, 300, 750, 925, 1100}, 150, 120, Property},
	25: {"B. & O. Railroad", "", 200, []int{25, 50, 100, 200}, 0, 100, Railroad},
	26: {"Atlantic Avenue", "yellow", 260, []int{22, 110, 330, 800, 975, 1150}, 150, 130, Property},
	27: {"Ventnor Avenue", "yellow", 260, []int{22, 110, 330, 800, 975, 1150}, 150, 130, Property},
	28: {"Water Works", "", 150, []int{4, 10}, 0, 75, Utility},
	29: {"Marvin Gardens", "yellow", 280, []int{24, 120, 360, 850, 1025, 1200}, 150, 140, Property},
	31: {"Pacific Avenue", "green", 300, []int{26, 130, 390, 900, 1100, 1275}, 200, 150, Property},
	32: {"North Carolina Avenue", "green", 300, []int{26, 130, 390, 900, 1100, 1275}, 200, 150, Property},
	34: {"Pennsylvania Avenue", "green", 320, []int{28, 150, 450, 1000, 1200, 1400}, 200, 160, Property},
	35: {"Short Line", "", 200, []int{25, 50, 100, 200}, 0, 100, Railroad},
	37: {"Park Place", "dark_blue", 350, []int{35, 175, 500, 1100, 1300, 1500}, 200, 175, Property},
	39: {"Boardwalk", "dark_blue", 400, []int{50, 200, 600, 1400, 1700, 2000}, 200, 200, Property},
}

var Groups = map[string][]int{
	"brown":      {1, 3},
	"light_blue": {6, 8, 9},
	"pink":       {11, 13, 14},
	"orange":     {16, 18, 19},
	"red":        {21, 23, 24},
	"yellow":     {26, 27, 29},
	"green":      {31, 32, 34},
	"dark_blue":  {37, 39},
}

var Railroads = []int{5, 15, 25, 35}
var Utilities = []int{12, 28}

func GetByPos(pos int) (Space, error) {
	if pos < 0 || pos >= Size {
		return Space{}, errors.New("not found")
	}
	return Spaces[pos], nil
}

func GetById(id int) (PropertyData, error) {
	data, ok := Properties[id]
	if !ok {
		return PropertyData{}, errors.New("not found")
	}
	return data, nil
}
