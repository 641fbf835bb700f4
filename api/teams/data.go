/* data.go
 * Contains the built in alias table. Abbreviations follow what the tracked experts
 * actually post; canonical names match the display names used by the scoreboard API.
 * Entries that collide across sports (e.g. "det", "tb") are intentional, the
 * resolver treats them as ambiguous unless a sport hint is supplied
 * Authors: Zachary Bower
 */

package teams

import "bet-tracker/api/shared"

type teamEntry struct {
	sport   shared.Sport
	name    string
	aliases []string
}

var defaultTeams = []teamEntry{
	// MLB
	{shared.SportMLB, "Arizona Diamondbacks", []string{"ari", "arizona", "diamondbacks", "dbacks"}},
	{shared.SportMLB, "Atlanta Braves", []string{"atl", "atlanta", "braves"}},
	{shared.SportMLB, "Baltimore Orioles", []string{"bal", "baltimore", "orioles"}},
	{shared.SportMLB, "Boston Red Sox", []string{"bos", "boston", "red sox"}},
	{shared.SportMLB, "Chicago Cubs", []string{"chc", "cubs"}},
	{shared.SportMLB, "Chicago White Sox", []string{"cws", "chw", "white sox"}},
	{shared.SportMLB, "Cincinnati Reds", []string{"cin", "cincinnati", "reds"}},
	{shared.SportMLB, "Cleveland Guardians", []string{"cle", "cleveland", "guardians"}},
	{shared.SportMLB, "Colorado Rockies", []string{"col", "colorado", "rockies"}},
	{shared.SportMLB, "Detroit Tigers", []string{"det", "detroit", "tigers"}},
	{shared.SportMLB, "Houston Astros", []string{"hou", "houston", "astros"}},
	{shared.SportMLB, "Kansas City Royals", []string{"kc", "kansas city", "royals"}},
	{shared.SportMLB, "Los Angeles Angels", []string{"laa", "angels"}},
	{shared.SportMLB, "Los Angeles Dodgers", []string{"lad", "dodgers"}},
	{shared.SportMLB, "Miami Marlins", []string{"mia", "miami", "marlins"}},
	{shared.SportMLB, "Milwaukee Brewers", []string{"mil", "milwaukee", "brewers"}},
	{shared.SportMLB, "Minnesota Twins", []string{"min", "minnesota", "twins"}},
	{shared.SportMLB, "New York Mets", []string{"nym", "mets"}},
	{shared.SportMLB, "New York Yankees", []string{"nyy", "yankees"}},
	{shared.SportMLB, "Oakland Athletics", []string{"ath", "oak", "oakland", "athletics", "a's"}},
	{shared.SportMLB, "Philadelphia Phillies", []string{"phi", "philadelphia", "phillies"}},
	{shared.SportMLB, "Pittsburgh Pirates", []string{"pit", "pittsburgh", "pirates"}},
	{shared.SportMLB, "San Diego Padres", []string{"sd", "san diego", "padres"}},
	{shared.SportMLB, "San Francisco Giants", []string{"sf", "san francisco", "giants"}},
	{shared.SportMLB, "Seattle Mariners", []string{"sea", "seattle", "mariners"}},
	{shared.SportMLB, "St. Louis Cardinals", []string{"stl", "st. louis", "st louis", "cardinals"}},
	{shared.SportMLB, "Tampa Bay Rays", []string{"tb", "tampa bay", "rays"}},
	{shared.SportMLB, "Texas Rangers", []string{"tex", "texas", "rangers"}},
	{shared.SportMLB, "Toronto Blue Jays", []string{"tor", "toronto", "blue jays", "jays"}},
	{shared.SportMLB, "Washington Nationals", []string{"wsh", "washington", "nationals", "nats"}},

	// NFL
	{shared.SportNFL, "Arizona Cardinals", []string{"ari", "arizona", "cardinals"}},
	{shared.SportNFL, "Atlanta Falcons", []string{"atl", "atlanta", "falcons"}},
	{shared.SportNFL, "Baltimore Ravens", []string{"bal", "baltimore", "ravens"}},
	{shared.SportNFL, "Buffalo Bills", []string{"buf", "buffalo", "bills"}},
	{shared.SportNFL, "Carolina Panthers", []string{"car", "carolina", "panthers"}},
	{shared.SportNFL, "Chicago Bears", []string{"chi", "chicago", "bears"}},
	{shared.SportNFL, "Cincinnati Bengals", []string{"cin", "cincinnati", "bengals"}},
	{shared.SportNFL, "Cleveland Browns", []string{"cle", "cleveland", "browns"}},
	{shared.SportNFL, "Dallas Cowboys", []string{"dal", "dallas", "cowboys"}},
	{shared.SportNFL, "Denver Broncos", []string{"den", "denver", "broncos"}},
	{shared.SportNFL, "Detroit Lions", []string{"det", "detroit", "lions"}},
	{shared.SportNFL, "Green Bay Packers", []string{"gb", "green bay", "packers"}},
	{shared.SportNFL, "Houston Texans", []string{"hou", "houston", "texans"}},
	{shared.SportNFL, "Indianapolis Colts", []string{"ind", "indianapolis", "colts"}},
	{shared.SportNFL, "Jacksonville Jaguars", []string{"jax", "jacksonville", "jaguars"}},
	{shared.SportNFL, "Kansas City Chiefs", []string{"kc", "kansas city", "chiefs"}},
	{shared.SportNFL, "Las Vegas Raiders", []string{"lv", "las vegas", "raiders"}},
	{shared.SportNFL, "Los Angeles Chargers", []string{"lac", "chargers"}},
	{shared.SportNFL, "Los Angeles Rams", []string{"lar", "rams"}},
	{shared.SportNFL, "Miami Dolphins", []string{"mia", "miami", "dolphins"}},
	{shared.SportNFL, "Minnesota Vikings", []string{"min", "minnesota", "vikings"}},
	{shared.SportNFL, "New England Patriots", []string{"ne", "new england", "patriots", "pats"}},
	{shared.SportNFL, "New Orleans Saints", []string{"no", "new orleans", "saints"}},
	{shared.SportNFL, "New York Giants", []string{"nyg", "giants"}},
	{shared.SportNFL, "New York Jets", []string{"nyj", "jets"}},
	{shared.SportNFL, "Philadelphia Eagles", []string{"phi", "philadelphia", "eagles"}},
	{shared.SportNFL, "Pittsburgh Steelers", []string{"pit", "pittsburgh", "steelers"}},
	{shared.SportNFL, "San Francisco 49ers", []string{"sf", "san francisco", "49ers", "niners"}},
	{shared.SportNFL, "Seattle Seahawks", []string{"sea", "seattle", "seahawks"}},
	{shared.SportNFL, "Tampa Bay Buccaneers", []string{"tb", "tampa bay", "buccaneers", "bucs"}},
	{shared.SportNFL, "Tennessee Titans", []string{"ten", "tennessee", "titans"}},
	{shared.SportNFL, "Washington Commanders", []string{"was", "washington", "commanders"}},

	// NHL
	{shared.SportNHL, "Anaheim Ducks", []string{"ana", "anaheim", "ducks"}},
	{shared.SportNHL, "Boston Bruins", []string{"bos", "boston", "bruins"}},
	{shared.SportNHL, "Buffalo Sabres", []string{"buf", "buffalo", "sabres"}},
	{shared.SportNHL, "Calgary Flames", []string{"cgy", "calgary", "flames"}},
	{shared.SportNHL, "Carolina Hurricanes", []string{"car", "carolina", "hurricanes"}},
	{shared.SportNHL, "Chicago Blackhawks", []string{"chi", "chicago", "blackhawks"}},
	{shared.SportNHL, "Colorado Avalanche", []string{"col", "colorado", "avalanche", "avs"}},
	{shared.SportNHL, "Columbus Blue Jackets", []string{"cbj", "columbus", "blue jackets"}},
	{shared.SportNHL, "Dallas Stars", []string{"dal", "dallas", "stars"}},
	{shared.SportNHL, "Detroit Red Wings", []string{"det", "detroit", "red wings"}},
	{shared.SportNHL, "Edmonton Oilers", []string{"edm", "edmonton", "oilers"}},
	{shared.SportNHL, "Florida Panthers", []string{"fla", "florida", "panthers"}},
	{shared.SportNHL, "Los Angeles Kings", []string{"lak", "kings"}},
	{shared.SportNHL, "Minnesota Wild", []string{"min", "minnesota", "wild"}},
	{shared.SportNHL, "Montreal Canadiens", []string{"mtl", "montreal", "canadiens", "habs"}},
	{shared.SportNHL, "Nashville Predators", []string{"nsh", "nashville", "predators", "preds"}},
	{shared.SportNHL, "New Jersey Devils", []string{"njd", "new jersey", "devils"}},
	{shared.SportNHL, "New York Islanders", []string{"nyi", "islanders", "isles"}},
	{shared.SportNHL, "New York Rangers", []string{"nyr", "rangers"}},
	{shared.SportNHL, "Ottawa Senators", []string{"ott", "ottawa", "senators", "sens"}},
	{shared.SportNHL, "Philadelphia Flyers", []string{"phi", "philadelphia", "flyers"}},
	{shared.SportNHL, "Pittsburgh Penguins", []string{"pit", "pittsburgh", "penguins", "pens"}},
	{shared.SportNHL, "San Jose Sharks", []string{"sjs", "san jose", "sharks"}},
	{shared.SportNHL, "Seattle Kraken", []string{"sea", "seattle", "kraken"}},
	{shared.SportNHL, "St. Louis Blues", []string{"stl", "st. louis", "st louis", "blues"}},
	{shared.SportNHL, "Tampa Bay Lightning", []string{"tb", "tampa bay", "lightning", "bolts"}},
	{shared.SportNHL, "Toronto Maple Leafs", []string{"tor", "toronto", "maple leafs", "leafs"}},
	{shared.SportNHL, "Utah Mammoth", []string{"uta", "utah", "mammoth"}},
	{shared.SportNHL, "Vancouver Canucks", []string{"van", "vancouver", "canucks"}},
	{shared.SportNHL, "Vegas Golden Knights", []string{"vgk", "vegas", "golden knights"}},
	{shared.SportNHL, "Washington Capitals", []string{"was", "washington", "capitals", "caps"}},
	{shared.SportNHL, "Winnipeg Jets", []string{"wpg", "winnipeg", "jets"}},

	// CFB. Duplicate nicknames within the sport (tigers, wildcats, bulldogs) are
	// deliberately left out of the alias lists; school names stay unambiguous
	{shared.SportCFB, "Alabama Crimson Tide", []string{"ala", "bama", "alabama", "crimson tide"}},
	{shared.SportCFB, "Baylor Bears", []string{"baylor"}},
	{shared.SportCFB, "Clemson Tigers", []string{"clemson"}},
	{shared.SportCFB, "Florida Gators", []string{"uf", "florida", "gators"}},
	{shared.SportCFB, "Florida State Seminoles", []string{"fsu", "florida state", "seminoles"}},
	{shared.SportCFB, "Georgia Bulldogs", []string{"uga", "georgia"}},
	{shared.SportCFB, "Iowa Hawkeyes", []string{"iowa", "hawkeyes"}},
	{shared.SportCFB, "Iowa State Cyclones", []string{"iowa state", "cyclones"}},
	{shared.SportCFB, "Kansas Jayhawks", []string{"ku", "kansas", "jayhawks"}},
	{shared.SportCFB, "Kansas State Wildcats", []string{"ksu", "kansas state"}},
	{shared.SportCFB, "LSU Tigers", []string{"lsu"}},
	{shared.SportCFB, "Miami Hurricanes", []string{"miami", "the u"}},
	{shared.SportCFB, "Michigan Wolverines", []string{"mich", "michigan", "wolverines"}},
	{shared.SportCFB, "Nebraska Cornhuskers", []string{"neb", "nebraska", "cornhuskers", "huskers"}},
	{shared.SportCFB, "Notre Dame Fighting Irish", []string{"nd", "notre dame", "fighting irish"}},
	{shared.SportCFB, "Ohio State Buckeyes", []string{"ohio state", "buckeyes"}},
	{shared.SportCFB, "Oklahoma Sooners", []string{"ou", "oklahoma", "sooners"}},
	{shared.SportCFB, "Oklahoma State Cowboys", []string{"okst", "oklahoma state"}},
	{shared.SportCFB, "Ole Miss Rebels", []string{"ole miss", "rebels"}},
	{shared.SportCFB, "Oregon Ducks", []string{"ore", "oregon"}},
	{shared.SportCFB, "Penn State Nittany Lions", []string{"psu", "penn state", "nittany lions"}},
	{shared.SportCFB, "TCU Horned Frogs", []string{"tcu", "horned frogs"}},
	{shared.SportCFB, "Tennessee Volunteers", []string{"tennessee", "vols", "volunteers"}},
	{shared.SportCFB, "Texas A&M Aggies", []string{"tamu", "texas a&m", "aggies"}},
	{shared.SportCFB, "Texas Longhorns", []string{"ut", "longhorns"}},
	{shared.SportCFB, "Texas Tech Red Raiders", []string{"ttu", "texas tech", "red raiders"}},
	{shared.SportCFB, "Tulsa Golden Hurricane", []string{"tulsa", "golden hurricane"}},
	{shared.SportCFB, "USC Trojans", []string{"usc", "trojans"}},
	{shared.SportCFB, "West Virginia Mountaineers", []string{"wvu", "west virginia", "mountaineers"}},
	{shared.SportCFB, "Wisconsin Badgers", []string{"wisc", "wisconsin", "badgers"}},
}
