// Package sources maps a country/category pair to the feed URLs to query.
// Dynamic entries from the source store take precedence; the static table
// below is the built-in fallback so resolution works with no database at all.
package sources

import (
	"sort"
	"strings"

	"newsmix/pkg/domain"
)

// Categories supported per country. "homepage" is the front-page mix.
var Categories = []string{
	"homepage", "news", "world", "business", "sports",
	"technology", "entertainment", "politics", "science", "health",
}

// Provider is one publisher with its per-category feed URLs
type Provider struct {
	Name    string
	Website string
	Feeds   map[string]string
}

// CountryFeeds groups the static providers configured for a country
type CountryFeeds struct {
	Code    string
	Name    string
	Sources []Provider
}

// isoAliases maps ISO-3166 codes to country identifiers; several regions
// share one pool of sources
var isoAliases = map[string]string{
	"IN": "INDIA", "US": "UNITED_STATES", "GB": "UNITED_KINGDOM", "UK": "UNITED_KINGDOM",
	"AU": "AUSTRALIA", "CA": "CANADA", "DE": "GERMANY", "FR": "FRANCE",
	"ES": "SPAIN", "IT": "ITALY", "NL": "NETHERLANDS", "IE": "IRELAND",
	"SE": "SWEDEN", "NO": "NORWAY", "CH": "SWITZERLAND", "JP": "JAPAN",
	"SG": "SINGAPORE", "AE": "MIDDLE_EAST", "SA": "MIDDLE_EAST", "QA": "MIDDLE_EAST",
	"ZA": "AFRICA", "NG": "AFRICA", "KE": "AFRICA", "EG": "AFRICA",
}

// NormalizeCountry resolves ISO aliases and case to the canonical country
// code; unknown input is returned upper-cased as-is so lookups simply miss
func NormalizeCountry(code string) string {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if canonical, ok := isoAliases[upper]; ok {
		return canonical
	}
	return upper
}

// StaticSources collects every static feed URL defined for the country's
// providers under the given category
func StaticSources(country, category string) []domain.Source {
	cf, ok := staticFeeds[NormalizeCountry(country)]
	if !ok {
		return nil
	}
	var out []domain.Source
	for _, p := range cf.Sources {
		if url, ok := p.Feeds[category]; ok && url != "" {
			out = append(out, domain.Source{
				Country:  cf.Code,
				Category: category,
				Name:     p.Name,
				URL:      url,
				Active:   true,
			})
		}
	}
	return out
}

// Countries lists all statically configured countries, sorted by code
func Countries() []CountryFeeds {
	out := make([]CountryFeeds, 0, len(staticFeeds))
	for _, cf := range staticFeeds {
		out = append(out, cf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

var staticFeeds = map[string]CountryFeeds{
	"INDIA": {
		Code: "INDIA",
		Name: "India",
		Sources: []Provider{
			{
				Name:    "The Hindu",
				Website: "https://www.thehindu.com",
				Feeds: map[string]string{
					"homepage":   "https://www.thehindu.com/feeder/default.rss",
					"news":       "https://www.thehindu.com/news/national/feeder/default.rss",
					"world":      "https://www.thehindu.com/news/international/feeder/default.rss",
					"business":   "https://www.thehindu.com/business/feeder/default.rss",
					"sports":     "https://www.thehindu.com/sport/feeder/default.rss",
					"technology": "https://www.thehindu.com/sci-tech/feeder/default.rss",
					"politics":   "https://www.thehindu.com/news/national/feeder/default.rss",
				},
			},
			{
				Name:    "Times of India",
				Website: "https://timesofindia.indiatimes.com",
				Feeds: map[string]string{
					"homepage": "https://timesofindia.indiatimes.com/rssfeedstopstories.cms",
					"news":     "https://timesofindia.indiatimes.com/rssfeeds/1081479906.cms",
					"world":    "https://timesofindia.indiatimes.com/rssfeeds/-2128936835.cms",
					"business": "https://timesofindia.indiatimes.com/rssfeeds/4719148.cms",
					"sports":   "https://timesofindia.indiatimes.com/rssfeeds/4719161.cms",
					"politics": "https://timesofindia.indiatimes.com/rssfeeds/15494444.cms",
				},
			},
			{
				Name:    "NDTV",
				Website: "https://www.ndtv.com",
				Feeds: map[string]string{
					"homepage":   "https://feeds.feedburner.com/ndtvnews-top-stories",
					"news":       "https://feeds.feedburner.com/ndtvnews-india-news",
					"world":      "https://feeds.feedburner.com/ndtvnews-world-news",
					"business":   "https://feeds.feedburner.com/ndtvnews-business",
					"sports":     "https://feeds.feedburner.com/ndtvsports-latest",
					"technology": "https://feeds.feedburner.com/gadgets360-latest",
					"politics":   "https://feeds.feedburner.com/ndtvnews-india-news",
				},
			},
		},
	},
	"UNITED_STATES": {
		Code: "UNITED_STATES",
		Name: "United States",
		Sources: []Provider{
			{
				Name:    "The New York Times",
				Website: "https://www.nytimes.com",
				Feeds: map[string]string{
					"homepage":   "https://rss.nytimes.com/services/xml/rss/nyt/HomePage.xml",
					"news":       "https://rss.nytimes.com/services/xml/rss/nyt/US.xml",
					"world":      "https://rss.nytimes.com/services/xml/rss/nyt/World.xml",
					"politics":   "https://rss.nytimes.com/services/xml/rss/nyt/Politics.xml",
					"business":   "https://rss.nytimes.com/services/xml/rss/nyt/Business.xml",
					"technology": "https://rss.nytimes.com/services/xml/rss/nyt/Technology.xml",
					"sports":     "https://rss.nytimes.com/services/xml/rss/nyt/Sports.xml",
					"science":    "https://rss.nytimes.com/services/xml/rss/nyt/Science.xml",
				},
			},
			{
				Name:    "CNN",
				Website: "https://www.cnn.com",
				Feeds: map[string]string{
					"homepage":      "http://rss.cnn.com/rss/cnn_topstories.rss",
					"news":          "http://rss.cnn.com/rss/cnn_us.rss",
					"world":         "http://rss.cnn.com/rss/cnn_world.rss",
					"business":      "http://rss.cnn.com/rss/money_latest.rss",
					"technology":    "http://rss.cnn.com/rss/cnn_tech.rss",
					"entertainment": "http://rss.cnn.com/rss/cnn_showbiz.rss",
					"health":        "http://rss.cnn.com/rss/cnn_health.rss",
				},
			},
			{
				Name:    "NPR",
				Website: "https://www.npr.org",
				Feeds: map[string]string{
					"homepage":   "https://feeds.npr.org/1001/rss.xml",
					"news":       "https://feeds.npr.org/1003/rss.xml",
					"world":      "https://feeds.npr.org/1004/rss.xml",
					"politics":   "https://feeds.npr.org/1014/rss.xml",
					"business":   "https://feeds.npr.org/1006/rss.xml",
					"technology": "https://feeds.npr.org/1019/rss.xml",
				},
			},
		},
	},
	"UNITED_KINGDOM": {
		Code: "UNITED_KINGDOM",
		Name: "United Kingdom",
		Sources: []Provider{
			{
				Name:    "BBC News",
				Website: "https://www.bbc.com/news",
				Feeds: map[string]string{
					"homepage":      "https://feeds.bbci.co.uk/news/rss.xml",
					"news":          "https://feeds.bbci.co.uk/news/uk/rss.xml",
					"world":         "https://feeds.bbci.co.uk/news/world/rss.xml",
					"business":      "https://feeds.bbci.co.uk/news/business/rss.xml",
					"politics":      "https://feeds.bbci.co.uk/news/politics/rss.xml",
					"technology":    "https://feeds.bbci.co.uk/news/technology/rss.xml",
					"science":       "https://feeds.bbci.co.uk/news/science_and_environment/rss.xml",
					"health":        "https://feeds.bbci.co.uk/news/health/rss.xml",
					"entertainment": "https://feeds.bbci.co.uk/news/entertainment_and_arts/rss.xml",
					"sports":        "https://feeds.bbci.co.uk/sport/rss.xml",
				},
			},
			{
				Name:    "The Guardian",
				Website: "https://www.theguardian.com",
				Feeds: map[string]string{
					"homepage":   "https://www.theguardian.com/international/rss",
					"news":       "https://www.theguardian.com/uk-news/rss",
					"world":      "https://www.theguardian.com/world/rss",
					"politics":   "https://www.theguardian.com/politics/rss",
					"business":   "https://www.theguardian.com/uk/business/rss",
					"technology": "https://www.theguardian.com/uk/technology/rss",
					"sports":     "https://www.theguardian.com/uk/sport/rss",
					"science":    "https://www.theguardian.com/science/rss",
				},
			},
			{
				Name:    "Sky News",
				Website: "https://news.sky.com",
				Feeds: map[string]string{
					"homepage":      "https://feeds.skynews.com/feeds/rss/home.xml",
					"news":          "https://feeds.skynews.com/feeds/rss/uk.xml",
					"world":         "https://feeds.skynews.com/feeds/rss/world.xml",
					"business":      "https://feeds.skynews.com/feeds/rss/business.xml",
					"politics":      "https://feeds.skynews.com/feeds/rss/politics.xml",
					"technology":    "https://feeds.skynews.com/feeds/rss/technology.xml",
					"entertainment": "https://feeds.skynews.com/feeds/rss/entertainment.xml",
				},
			},
		},
	},
	"AUSTRALIA": {
		Code: "AUSTRALIA",
		Name: "Australia",
		Sources: []Provider{
			{
				Name:    "ABC News Australia",
				Website: "https://www.abc.net.au/news",
				Feeds: map[string]string{
					"homepage":   "https://www.abc.net.au/news/feed/45924/rss.xml",
					"news":       "https://www.abc.net.au/news/feed/51120/rss.xml",
					"world":      "https://www.abc.net.au/news/feed/46182/rss.xml",
					"business":   "https://www.abc.net.au/news/feed/51892/rss.xml",
					"science":    "https://www.abc.net.au/news/feed/46190/rss.xml",
					"health":     "https://www.abc.net.au/news/feed/46180/rss.xml",
					"technology": "https://www.abc.net.au/news/feed/4534422/rss.xml",
				},
			},
			{
				Name:    "The Sydney Morning Herald",
				Website: "https://www.smh.com.au",
				Feeds: map[string]string{
					"homepage":   "https://www.smh.com.au/rss/feed.xml",
					"news":       "https://www.smh.com.au/rss/national.xml",
					"world":      "https://www.smh.com.au/rss/world.xml",
					"business":   "https://www.smh.com.au/rss/business.xml",
					"technology": "https://www.smh.com.au/rss/technology.xml",
					"sports":     "https://www.smh.com.au/rss/sport.xml",
				},
			},
		},
	},
	"CANADA": {
		Code: "CANADA",
		Name: "Canada",
		Sources: []Provider{
			{
				Name:    "CBC News",
				Website: "https://www.cbc.ca/news",
				Feeds: map[string]string{
					"homepage":   "https://www.cbc.ca/webfeed/rss/rss-topstories",
					"news":       "https://www.cbc.ca/webfeed/rss/rss-canada",
					"world":      "https://www.cbc.ca/webfeed/rss/rss-world",
					"politics":   "https://www.cbc.ca/webfeed/rss/rss-politics",
					"business":   "https://www.cbc.ca/webfeed/rss/rss-business",
					"technology": "https://www.cbc.ca/webfeed/rss/rss-technology",
					"health":     "https://www.cbc.ca/webfeed/rss/rss-health",
					"sports":     "https://www.cbc.ca/webfeed/rss/rss-sports",
				},
			},
			{
				Name:    "The Globe and Mail",
				Website: "https://www.theglobeandmail.com",
				Feeds: map[string]string{
					"news":     "https://www.theglobeandmail.com/arc/outboundfeeds/rss/category/canada/",
					"world":    "https://www.theglobeandmail.com/arc/outboundfeeds/rss/category/world/",
					"business": "https://www.theglobeandmail.com/arc/outboundfeeds/rss/category/business/",
					"politics": "https://www.theglobeandmail.com/arc/outboundfeeds/rss/category/politics/",
					"sports":   "https://www.theglobeandmail.com/arc/outboundfeeds/rss/category/sports/",
				},
			},
		},
	},
	"GERMANY": {
		Code: "GERMANY",
		Name: "Germany",
		Sources: []Provider{
			{
				Name:    "Deutsche Welle",
				Website: "https://www.dw.com",
				Feeds: map[string]string{
					"homepage": "https://rss.dw.com/rdf/rss-en-all",
					"news":     "https://rss.dw.com/rdf/rss-en-top",
					"world":    "https://rss.dw.com/rdf/rss-en-world",
					"business": "https://rss.dw.com/rdf/rss-en-bus",
					"science":  "https://rss.dw.com/rdf/rss-en-sci",
				},
			},
		},
	},
	"FRANCE": {
		Code: "FRANCE",
		Name: "France",
		Sources: []Provider{
			{
				Name:    "France 24",
				Website: "https://www.france24.com",
				Feeds: map[string]string{
					"homepage": "https://www.france24.com/en/rss",
					"news":     "https://www.france24.com/en/france/rss",
				},
			},
		},
	},
	"IRELAND": {
		Code: "IRELAND",
		Name: "Ireland",
		Sources: []Provider{
			{
				Name:    "RTE News",
				Website: "https://www.rte.ie/news",
				Feeds: map[string]string{
					"homepage": "https://www.rte.ie/news/rss/news-headlines.xml",
					"news":     "https://www.rte.ie/news/rss/ireland.xml",
					"world":    "https://www.rte.ie/news/rss/world.xml",
					"business": "https://www.rte.ie/news/rss/business.xml",
					"politics": "https://www.rte.ie/news/rss/politics.xml",
				},
			},
		},
	},
	"JAPAN": {
		Code: "JAPAN",
		Name: "Japan",
		Sources: []Provider{
			{
				Name:    "The Japan Times",
				Website: "https://www.japantimes.co.jp",
				Feeds: map[string]string{
					"homepage": "https://www.japantimes.co.jp/feed/",
					"news":     "https://www.japantimes.co.jp/news/feed/",
					"business": "https://www.japantimes.co.jp/business/feed/",
					"sports":   "https://www.japantimes.co.jp/sports/feed/",
				},
			},
			{
				Name:    "NHK World",
				Website: "https://www3.nhk.or.jp/nhkworld",
				Feeds: map[string]string{
					"homepage": "https://www3.nhk.or.jp/rss/news/cat0.xml",
					"world":    "https://www3.nhk.or.jp/rss/news/cat6.xml",
					"business": "https://www3.nhk.or.jp/rss/news/cat5.xml",
					"politics": "https://www3.nhk.or.jp/rss/news/cat4.xml",
				},
			},
		},
	},
	"SPAIN": {
		Code: "SPAIN",
		Name: "Spain",
		Sources: []Provider{
			{
				Name:    "El Pais",
				Website: "https://english.elpais.com",
				Feeds: map[string]string{
					"homepage": "https://feeds.elpais.com/mrss-s/pages/ep/site/english.elpais.com/portada",
				},
			},
		},
	},
	"ITALY": {
		Code: "ITALY",
		Name: "Italy",
		Sources: []Provider{
			{
				Name:    "ANSA",
				Website: "https://www.ansa.it/english",
				Feeds: map[string]string{
					"homepage": "https://www.ansa.it/english/english.rss",
				},
			},
		},
	},
	"NETHERLANDS": {
		Code: "NETHERLANDS",
		Name: "Netherlands",
		Sources: []Provider{
			{
				Name:    "Dutch News",
				Website: "https://www.dutchnews.nl",
				Feeds: map[string]string{
					"homepage": "https://www.dutchnews.nl/feed/",
				},
			},
		},
	},
	"SWEDEN": {
		Code: "SWEDEN",
		Name: "Sweden",
		Sources: []Provider{
			{
				Name:    "The Local Sweden",
				Website: "https://www.thelocal.se",
				Feeds: map[string]string{
					"homepage": "https://www.thelocal.se/feed",
				},
			},
		},
	},
	"NORWAY": {
		Code: "NORWAY",
		Name: "Norway",
		Sources: []Provider{
			{
				Name:    "The Local Norway",
				Website: "https://www.thelocal.no",
				Feeds: map[string]string{
					"homepage": "https://www.thelocal.no/feed",
				},
			},
		},
	},
	"SWITZERLAND": {
		Code: "SWITZERLAND",
		Name: "Switzerland",
		Sources: []Provider{
			{
				Name:    "Swissinfo",
				Website: "https://www.swissinfo.ch",
				Feeds: map[string]string{
					"homepage": "https://www.swissinfo.ch/eng/rss/all-news",
				},
			},
		},
	},
	"SINGAPORE": {
		Code: "SINGAPORE",
		Name: "Singapore",
		Sources: []Provider{
			{
				Name:    "The Straits Times",
				Website: "https://www.straitstimes.com",
				Feeds: map[string]string{
					"news":       "https://www.straitstimes.com/news/singapore/rss.xml",
					"world":      "https://www.straitstimes.com/news/world/rss.xml",
					"business":   "https://www.straitstimes.com/news/business/rss.xml",
					"technology": "https://www.straitstimes.com/news/tech/rss.xml",
					"sports":     "https://www.straitstimes.com/news/sport/rss.xml",
				},
			},
			{
				Name:    "Channel News Asia",
				Website: "https://www.channelnewsasia.com",
				Feeds: map[string]string{
					"homepage": "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
				},
			},
		},
	},
	"MIDDLE_EAST": {
		Code: "MIDDLE_EAST",
		Name: "Middle East",
		Sources: []Provider{
			{
				Name:    "Al Jazeera",
				Website: "https://www.aljazeera.com",
				Feeds: map[string]string{
					"homepage": "https://www.aljazeera.com/xml/rss/all.xml",
					"news":     "https://www.aljazeera.com/xml/rss/news_headlines.xml",
					"world":    "https://www.aljazeera.com/xml/rss/news_world.xml",
					"business": "https://www.aljazeera.com/xml/rss/news_economy.xml",
					"sports":   "https://www.aljazeera.com/xml/rss/news_sports.xml",
				},
			},
			{
				Name:    "Gulf News",
				Website: "https://gulfnews.com",
				Feeds: map[string]string{
					"homepage":   "https://gulfnews.com/rss",
					"world":      "https://gulfnews.com/world/rss",
					"business":   "https://gulfnews.com/business/rss",
					"sports":     "https://gulfnews.com/sport/rss",
					"technology": "https://gulfnews.com/technology/rss",
				},
			},
		},
	},
	"AFRICA": {
		Code: "AFRICA",
		Name: "Africa",
		Sources: []Provider{
			{
				Name:    "BBC Africa",
				Website: "https://www.bbc.com/news/world/africa",
				Feeds: map[string]string{
					"homepage": "https://feeds.bbci.co.uk/news/world/africa/rss.xml",
				},
			},
			{
				Name:    "Al Jazeera Africa",
				Website: "https://www.aljazeera.com/africa",
				Feeds: map[string]string{
					"homepage": "https://www.aljazeera.com/xml/rss/news_africa.xml",
				},
			},
		},
	},
}
