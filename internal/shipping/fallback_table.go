package shipping

import "carimport/internal/model"

// fallbackCities is the bundled Copart pickup tariff, grouped by export port.
// Seattle and Toronto yards ship on the dedicated Poti routes.
var fallbackCities = []FallbackCity{
	// Houston
	{"Abilene", "TX", model.PortHouston, 1025},
	{"Amarillo", "TX", model.PortHouston, 1100},
	{"Andrews", "TX", model.PortHouston, 1175},
	{"Austin", "TX", model.PortHouston, 900},
	{"Corpus Christi", "TX", model.PortHouston, 875},
	{"Dallas", "TX", model.PortHouston, 900},
	{"Dallas South", "TX", model.PortHouston, 900},
	{"El Paso", "TX", model.PortHouston, 1200},
	{"Ft. Worth", "TX", model.PortHouston, 925},
	{"Fort Worth North", "TX", model.PortHouston, 925},
	{"Houston", "TX", model.PortHouston, 650},
	{"Houston East", "TX", model.PortHouston, 650},
	{"Houston North", "TX", model.PortHouston, 675},
	{"Longview", "TX", model.PortHouston, 900},
	{"Lufkin", "TX", model.PortHouston, 825},
	{"McAllen", "TX", model.PortHouston, 975},
	{"San Antonio", "TX", model.PortHouston, 875},
	{"Waco", "TX", model.PortHouston, 875},
	{"Oklahoma City", "OK", model.PortHouston, 1050},
	{"Tulsa", "OK", model.PortHouston, 1075},
	{"Baton Rouge", "LA", model.PortHouston, 800},
	{"New Orleans", "LA", model.PortHouston, 850},
	{"Shreveport", "LA", model.PortHouston, 925},
	{"Fayetteville", "AR", model.PortHouston, 1150},
	{"Little Rock", "AR", model.PortHouston, 1050},
	{"Albuquerque", "NM", model.PortHouston, 1350},
	{"Kansas City", "KS", model.PortHouston, 1200},
	{"Wichita", "KS", model.PortHouston, 1150},
	{"St. Louis", "MO", model.PortHouston, 1200},
	{"Springfield", "MO", model.PortHouston, 1175},
	{"Sikeston", "MO", model.PortHouston, 1175},
	{"Jackson", "MS", model.PortHouston, 950},
	{"Gulfport", "MS", model.PortHouston, 875},
	{"Denver", "CO", model.PortHouston, 1400},
	{"Denver Central", "CO", model.PortHouston, 1400},
	{"Denver South", "CO", model.PortHouston, 1425},
	{"Colorado Springs", "CO", model.PortHouston, 1375},
	{"Lincoln", "NE", model.PortHouston, 1300},
	{"Des Moines", "IA", model.PortHouston, 1350},
	{"Davenport", "IA", model.PortHouston, 1375},

	// Los Angeles
	{"Los Angeles", "CA", model.PortLosAngeles, 550},
	{"Sun Valley", "CA", model.PortLosAngeles, 575},
	{"Long Beach", "CA", model.PortLosAngeles, 525},
	{"Van Nuys", "CA", model.PortLosAngeles, 575},
	{"Rancho Cucamonga", "CA", model.PortLosAngeles, 600},
	{"San Bernardino", "CA", model.PortLosAngeles, 600},
	{"Colton", "CA", model.PortLosAngeles, 600},
	{"Mentone", "CA", model.PortLosAngeles, 625},
	{"Adelanto", "CA", model.PortLosAngeles, 650},
	{"San Diego", "CA", model.PortLosAngeles, 650},
	{"Bakersfield", "CA", model.PortLosAngeles, 700},
	{"Fresno", "CA", model.PortLosAngeles, 750},
	{"Sacramento", "CA", model.PortLosAngeles, 850},
	{"Rancho Cordova", "CA", model.PortLosAngeles, 850},
	{"Antelope", "CA", model.PortLosAngeles, 875},
	{"Hayward", "CA", model.PortLosAngeles, 850},
	{"San Jose", "CA", model.PortLosAngeles, 825},
	{"Martinez", "CA", model.PortLosAngeles, 875},
	{"Vallejo", "CA", model.PortLosAngeles, 875},
	{"Redding", "CA", model.PortLosAngeles, 975},
	{"Phoenix", "AZ", model.PortLosAngeles, 800},
	{"Tucson", "AZ", model.PortLosAngeles, 850},
	{"Las Vegas", "NV", model.PortLosAngeles, 750},
	{"Reno", "NV", model.PortLosAngeles, 950},
	{"Salt Lake City", "UT", model.PortLosAngeles, 1100},
	{"Ogden", "UT", model.PortLosAngeles, 1125},

	// New York
	{"Long Island", "NY", model.PortNewYork, 700},
	{"Newburgh", "NY", model.PortNewYork, 750},
	{"Albany", "NY", model.PortNewYork, 800},
	{"Buffalo", "NY", model.PortNewYork, 900},
	{"Rochester", "NY", model.PortNewYork, 875},
	{"Syracuse", "NY", model.PortNewYork, 850},
	{"Trenton", "NJ", model.PortNewYork, 700},
	{"Somerville", "NJ", model.PortNewYork, 700},
	{"Glassboro", "NJ", model.PortNewYork, 750},
	{"Philadelphia", "PA", model.PortNewYork, 750},
	{"Pittsburgh", "PA", model.PortNewYork, 950},
	{"Pittsburgh North", "PA", model.PortNewYork, 950},
	{"Harrisburg", "PA", model.PortNewYork, 800},
	{"Scranton", "PA", model.PortNewYork, 800},
	{"Chambersburg", "PA", model.PortNewYork, 850},
	{"York Haven", "PA", model.PortNewYork, 800},
	{"Altoona", "PA", model.PortNewYork, 900},
	{"Boston", "MA", model.PortNewYork, 800},
	{"North Boston", "MA", model.PortNewYork, 825},
	{"West Warren", "MA", model.PortNewYork, 850},
	{"Hartford", "CT", model.PortNewYork, 775},
	{"Hartford Springfield", "CT", model.PortNewYork, 800},
	{"Exeter", "RI", model.PortNewYork, 825},
	{"Candia", "NH", model.PortNewYork, 875},
	{"Windham", "ME", model.PortNewYork, 950},
	{"Lyman", "ME", model.PortNewYork, 950},
	{"Williston", "VT", model.PortNewYork, 950},
	{"Baltimore", "MD", model.PortNewYork, 750},
	{"Baltimore East", "MD", model.PortNewYork, 750},
	{"Seaford", "DE", model.PortNewYork, 800},
	{"Columbus", "OH", model.PortNewYork, 1000},
	{"Cleveland", "OH", model.PortNewYork, 950},
	{"Cleveland East", "OH", model.PortNewYork, 950},
	{"Dayton", "OH", model.PortNewYork, 1025},
	{"Cincinnati", "OH", model.PortNewYork, 1050},
	{"Detroit", "MI", model.PortNewYork, 1050},
	{"Lansing", "MI", model.PortNewYork, 1075},
	{"Grand Rapids", "MI", model.PortNewYork, 1100},
	{"Flint", "MI", model.PortNewYork, 1075},
	{"Ionia", "MI", model.PortNewYork, 1100},
	{"Indianapolis", "IN", model.PortNewYork, 1050},
	{"Fort Wayne", "IN", model.PortNewYork, 1075},
	{"Hammond", "IN", model.PortNewYork, 1025},
	{"Chicago North", "IL", model.PortNewYork, 1000},
	{"Chicago South", "IL", model.PortNewYork, 1000},
	{"Wheeling", "IL", model.PortNewYork, 1025},
	{"Peoria", "IL", model.PortNewYork, 1100},
	{"Southern Illinois", "IL", model.PortNewYork, 1150},
	{"Milwaukee", "WI", model.PortNewYork, 1075},
	{"Madison", "WI", model.PortNewYork, 1100},
	{"Appleton", "WI", model.PortNewYork, 1125},
	{"Minneapolis", "MN", model.PortNewYork, 1200},
	{"Minneapolis North", "MN", model.PortNewYork, 1200},
	{"St. Cloud", "MN", model.PortNewYork, 1250},
	{"Charleston", "WV", model.PortNewYork, 950},
	{"Fargo", "ND", model.PortNewYork, 1400},
	{"Sioux Falls", "SD", model.PortNewYork, 1350},

	// Savannah
	{"Savannah", "GA", model.PortSavannah, 500},
	{"Atlanta East", "GA", model.PortSavannah, 650},
	{"Atlanta West", "GA", model.PortSavannah, 650},
	{"Atlanta North", "GA", model.PortSavannah, 675},
	{"Atlanta South", "GA", model.PortSavannah, 650},
	{"Macon", "GA", model.PortSavannah, 575},
	{"Tifton", "GA", model.PortSavannah, 600},
	{"Fairburn", "GA", model.PortSavannah, 650},
	{"Jacksonville North", "FL", model.PortSavannah, 625},
	{"Jacksonville East", "FL", model.PortSavannah, 625},
	{"Miami North", "FL", model.PortSavannah, 800},
	{"Miami Central", "FL", model.PortSavannah, 800},
	{"Miami South", "FL", model.PortSavannah, 825},
	{"Orlando North", "FL", model.PortSavannah, 700},
	{"Orlando South", "FL", model.PortSavannah, 700},
	{"Tampa South", "FL", model.PortSavannah, 725},
	{"Punta Gorda", "FL", model.PortSavannah, 775},
	{"Ocala", "FL", model.PortSavannah, 675},
	{"Tallahassee", "FL", model.PortSavannah, 650},
	{"Pensacola", "FL", model.PortSavannah, 775},
	{"West Palm Beach", "FL", model.PortSavannah, 775},
	{"Ft. Pierce", "FL", model.PortSavannah, 750},
	{"Columbia", "SC", model.PortSavannah, 600},
	{"Greer", "SC", model.PortSavannah, 650},
	{"North Charleston", "SC", model.PortSavannah, 575},
	{"Spartanburg", "SC", model.PortSavannah, 650},
	{"Charlotte", "NC", model.PortSavannah, 700},
	{"Concord", "NC", model.PortSavannah, 700},
	{"Raleigh", "NC", model.PortSavannah, 775},
	{"Raleigh North", "NC", model.PortSavannah, 775},
	{"Mebane", "NC", model.PortSavannah, 750},
	{"Gastonia", "NC", model.PortSavannah, 700},
	{"China Grove", "NC", model.PortSavannah, 725},
	{"Lumberton", "NC", model.PortSavannah, 700},
	{"Knoxville", "TN", model.PortSavannah, 750},
	{"Nashville", "TN", model.PortSavannah, 800},
	{"Memphis", "TN", model.PortSavannah, 850},
	{"Chattanooga", "TN", model.PortSavannah, 700},
	{"Birmingham", "AL", model.PortSavannah, 750},
	{"Montgomery", "AL", model.PortSavannah, 700},
	{"Mobile", "AL", model.PortSavannah, 750},
	{"Tanner", "AL", model.PortSavannah, 800},
	{"Dothan", "AL", model.PortSavannah, 700},
	{"Richmond", "VA", model.PortSavannah, 850},
	{"Danville", "VA", model.PortSavannah, 800},
	{"Fredericksburg", "VA", model.PortSavannah, 875},
	{"Hampton", "VA", model.PortSavannah, 850},
	{"Louisville", "KY", model.PortSavannah, 900},
	{"Lexington East", "KY", model.PortSavannah, 900},
	{"Walton", "KY", model.PortSavannah, 925},
	{"Earlington", "KY", model.PortSavannah, 950},
	{"Washington DC", "DC", model.PortSavannah, 850},

	// Seattle - Poti
	{"Seattle", "WA", model.PortSeattle, 650},
	{"North Seattle", "WA", model.PortSeattle, 650},
	{"Graham", "WA", model.PortSeattle, 675},
	{"Pasco", "WA", model.PortSeattle, 900},
	{"Spokane", "WA", model.PortSeattle, 1000},
	{"Portland North", "OR", model.PortSeattle, 750},
	{"Portland South", "OR", model.PortSeattle, 750},
	{"Eugene", "OR", model.PortSeattle, 850},
	{"Boise", "ID", model.PortSeattle, 1050},
	{"Billings", "MT", model.PortSeattle, 1300},
	{"Helena", "MT", model.PortSeattle, 1250},
	{"Anchorage", "AK", model.PortSeattle, 1500},

	// Toronto - Poti
	{"Toronto", "ON", model.PortToronto, 600},
	{"Ottawa", "ON", model.PortToronto, 700},
	{"London", "ON", model.PortToronto, 675},
	{"Cookstown", "ON", model.PortToronto, 650},
	{"Montreal", "QC", model.PortToronto, 750},
	{"Quebec City", "QC", model.PortToronto, 850},
	{"Halifax", "NS", model.PortToronto, 1000},
	{"Moncton", "NB", model.PortToronto, 950},
	{"Calgary", "AB", model.PortToronto, 1500},
	{"Edmonton", "AB", model.PortToronto, 1550},
	{"Winnipeg", "MB", model.PortToronto, 1300},
}
