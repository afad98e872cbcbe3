package aggregator

import (
	"time"

	"github.com/Donnel-prog/PintigButuan/internal/processor"
)

// MockArticles is the fixed offline set: six Butuan City stories with
// timestamps spread over the last ten hours relative to now. Served when
// both the live fetch and the cache come up empty, and by the demo
// endpoint.
func MockArticles(now time.Time) []processor.Article {
	stamp := func(hoursAgo int) string {
		return now.Add(-time.Duration(hoursAgo) * time.Hour).UTC().Format(time.RFC3339)
	}

	return []processor.Article{
		{
			ID:           "mock-1",
			Title:        "Butuan City Launches P500M Smart City Digital Transformation",
			Description:  "Mayor confirms massive investment in digital infrastructure for the city, including smart traffic systems, public WiFi, and e-governance platforms for Butuanons.",
			Content:      `The Butuan City government has officially launched its Smart City Initiative with a P500 million budget. The project includes smart traffic management along major thoroughfares, city-wide public WiFi, and digital government services. "Butuan will become a model city for digital governance in Mindanao," the mayor said.`,
			URLToImage:   "https://images.unsplash.com/photo-1517048676732-d65bc937f952?auto=format&fit=crop&w=800&q=80",
			PublishedAt:  stamp(0),
			Source:       "Bombo Radyo Butuan",
			Author:       "Bombo Radyo News",
			URL:          "https://butuan.bomboradyo.com/",
			Region:       "Downtown",
			IsAdminAlert: false,
		},
		{
			ID:           "mock-2",
			Title:        "Bancasi Airport Expansion Project Reaches 60% Completion",
			Description:  "DPWH announces significant progress on the Bancasi Airport runway extension and new terminal building, expected to accommodate larger aircraft by Q3.",
			Content:      "The Department of Public Works and Highways (DPWH) reported that the Bancasi Airport expansion project in Butuan City has reached 60% completion. The project includes runway extension, a modern passenger terminal, and improved navigation systems.",
			URLToImage:   "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?auto=format&fit=crop&w=800&q=80",
			PublishedAt:  stamp(2),
			Source:       "MindaNews",
			Author:       "MindaNews Reporter",
			URL:          "https://mindanews.com/tag/butuan-city-news/",
			Region:       "Bancasi",
			IsAdminAlert: false,
		},
		{
			ID:           "mock-3",
			Title:        "Agusan River Flood Warning: CDRRMO Activates Response Teams",
			Description:  "Heavy rains prompt CDRRMO to deploy disaster response teams along the Agusan River basin. Evacuation centers prepared in low-lying barangays.",
			Content:      "The Butuan City CDRRMO has activated all response teams following heavy rainfall. Residents in flood-prone barangays along the Agusan River basin are advised to prepare for possible evacuation. Emergency hotlines are now operational 24/7.",
			URLToImage:   "https://images.unsplash.com/photo-1596422846543-75c6fc197f07?auto=format&fit=crop&w=800&q=80",
			PublishedAt:  stamp(4),
			Source:       "Brigada News",
			Author:       "CDRRMO Update",
			URL:          "https://www.brigadanews.ph/bnfm-butuan/",
			Region:       "Butuan City",
			IsAdminAlert: true,
		},
		{
			ID:           "mock-4",
			Title:        "Balangay Festival 2026: Butuan Celebrates Maritime Heritage",
			Description:  "Annual festival honors the city's pre-colonial maritime legacy. Week-long events include boat races, cultural shows, and historical exhibits at the National Museum.",
			Content:      "Butuan City celebrates the Balangay Festival 2026, commemorating the discovery of balangay boats — the oldest watercraft found in Southeast Asia. Events include the Regatta sa Agusan, street dancing, and exhibits at the Balangay Shrine Museum.",
			URLToImage:   "https://images.unsplash.com/photo-1518509562904-e7ef99cdcc86?auto=format&fit=crop&w=800&q=80",
			PublishedAt:  stamp(6),
			Source:       "Gold Star Daily",
			Author:       "Gold Star Reporter",
			URL:          "https://mindanaogoldstardaily.com/archives/category/butuan",
			Region:       "Downtown",
			IsAdminAlert: false,
		},
		{
			ID:           "mock-5",
			Title:        "Local Farmers Market in Libertad Sees Record Weekend Sales",
			Description:  "Butuan's Saturday farmer's market draws thousands of shoppers with fresh produce from Agusan plantations and artisanal products from local entrepreneurs.",
			Content:      "The weekend farmers market at Libertad saw record attendance and sales this Saturday. Over 200 vendor stalls offered fresh vegetables, fruits, and local delicacies. The market initiative supports local agricultural communities.",
			URLToImage:   "https://images.unsplash.com/photo-1523348837708-15d4a09cfac2?auto=format&fit=crop&w=800&q=80",
			PublishedAt:  stamp(8),
			Source:       "Bombo Radyo Butuan",
			Author:       "Bombo Radyo",
			URL:          "https://butuan.bomboradyo.com/",
			Region:       "Libertad",
			IsAdminAlert: false,
		},
		{
			ID:           "mock-6",
			Title:        "CSU Butuan Ranks Among Top Universities in National Research Output",
			Description:  "Caraga State University in Ampayon demonstrates research excellence in environmental science and sustainable mining studies, earning national recognition.",
			Content:      "Caraga State University (CSU) in Butuan City has been recognized for its outstanding research contributions, particularly in environmental science and sustainable mining. The university ranked among the top institutions nationally for published research.",
			URLToImage:   "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?auto=format&fit=crop&w=800&q=80",
			PublishedAt:  stamp(10),
			Source:       "MindaNews",
			Author:       "MindaNews",
			URL:          "https://mindanews.com/tag/butuan-city-news/",
			Region:       "Ampayon",
			IsAdminAlert: false,
		},
	}
}
