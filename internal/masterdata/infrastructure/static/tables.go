package static

import masterdata "zes-stations/internal/masterdata/domain"

// distribution2025 is the per-city station target, in iteration order.
var distribution2025 = []masterdata.CityTarget{
	{Name: "İstanbul", Target: 350},
	{Name: "Ankara", Target: 150},
	{Name: "İzmir", Target: 120},
	{Name: "Antalya", Target: 80},
	{Name: "Bursa", Target: 70},
	{Name: "Kocaeli", Target: 60},
	{Name: "Muğla", Target: 55},
	{Name: "Adana", Target: 50},
	{Name: "Mersin", Target: 45},
	{Name: "Konya", Target: 40},
	{Name: "Aydın", Target: 35},
	{Name: "Balıkesir", Target: 30},
	{Name: "Eskişehir", Target: 30},
	{Name: "Denizli", Target: 25},
	{Name: "Gaziantep", Target: 25},
	{Name: "Kayseri", Target: 20},
	{Name: "Tekirdağ", Target: 20},
	{Name: "Manisa", Target: 18},
	{Name: "Sakarya", Target: 18},
	{Name: "Çanakkale", Target: 15},
}

// detailedLocations holds the base-location table of every covered city.
var detailedLocations = map[string][]masterdata.BaseLocation{
	"İstanbul": {
		{Name: "Bağcılar Meydan AVM", Latitude: 41.0392, Longitude: 28.8576, District: "Bağcılar"},
		{Name: "Güngören Güven Park", Latitude: 41.0234, Longitude: 28.8734, District: "Güngören"},
		{Name: "Bahçelievler Metro İstasyonu", Latitude: 41.0012, Longitude: 28.8523, District: "Bahçelievler"},
		{Name: "Esenler Otobüs Terminali", Latitude: 41.0478, Longitude: 28.8812, District: "Esenler"},
		{Name: "Küçükçekmece Halkalı", Latitude: 41.0156, Longitude: 28.6234, District: "Küçükçekmece"},
		{Name: "Avcılar Ambarlı Yolu", Latitude: 40.9834, Longitude: 28.7312, District: "Avcılar"},
		{Name: "Beylikdüzü Migros AVM", Latitude: 41.0042, Longitude: 28.6499, District: "Beylikdüzü"},
		{Name: "Esenyurt Marmara Park AVM", Latitude: 41.0312, Longitude: 28.6734, District: "Esenyurt"},
		{Name: "Büyükçekmece Mimarsinan", Latitude: 41.0223, Longitude: 28.5845, District: "Büyükçekmece"},
		{Name: "Bakırköy Capacity AVM", Latitude: 40.9807, Longitude: 28.8734, District: "Bakırköy"},
		{Name: "Zeytinburnu Olivium AVM", Latitude: 41.0045, Longitude: 28.9012, District: "Zeytinburnu"},
		{Name: "Fatih Çapa", Latitude: 41.0189, Longitude: 28.9423, District: "Fatih"},
		{Name: "Eyüpsultan Çırçır", Latitude: 41.0567, Longitude: 28.9189, District: "Eyüpsultan"},
		{Name: "Gaziosmanpaşa Metro İstasyonu", Latitude: 41.0678, Longitude: 28.9056, District: "Gaziosmanpaşa"},
		{Name: "Sultangazi Cebeci", Latitude: 41.1012, Longitude: 28.8623, District: "Sultangazi"},
		{Name: "Başakşehir Metrokent", Latitude: 41.0923, Longitude: 28.8045, District: "Başakşehir"},
		{Name: "Arnavutköy Hadımköy", Latitude: 41.1456, Longitude: 28.6234, District: "Arnavutköy"},
		{Name: "Çatalca Merkez", Latitude: 41.1423, Longitude: 28.4612, District: "Çatalca"},
		{Name: "Silivri Selimpaşa", Latitude: 41.0734, Longitude: 28.2456, District: "Silivri"},
		{Name: "Beyoğlu Taksim", Latitude: 41.037, Longitude: 28.9857, District: "Beyoğlu"},
		{Name: "Şişli Mecidiyeköy", Latitude: 41.0649, Longitude: 28.9938, District: "Şişli"},
		{Name: "Beşiktaş Barbaros", Latitude: 41.0426, Longitude: 29.0076, District: "Beşiktaş"},
		{Name: "Sarıyer İstinye Park", Latitude: 41.1089, Longitude: 29.055, District: "Sarıyer"},
		{Name: "Kağıthane Çağlayan", Latitude: 41.0756, Longitude: 28.9789, District: "Kağıthane"},
		{Name: "Beylikdüzü Yaşam Vadisi", Latitude: 41.0123, Longitude: 28.6678, District: "Beylikdüzü"},
		{Name: "Kadıköy Moda", Latitude: 40.992, Longitude: 29.027, District: "Kadıköy"},
		{Name: "Maltepe Park Mavişehir", Latitude: 40.9356, Longitude: 29.1456, District: "Maltepe"},
		{Name: "Kartal Yakacık", Latitude: 40.9089, Longitude: 29.1823, District: "Kartal"},
		{Name: "Pendik Kaynarca", Latitude: 40.8718, Longitude: 29.2361, District: "Pendik"},
		{Name: "Tuzla DESİAD", Latitude: 40.8234, Longitude: 29.2978, District: "Tuzla"},
		{Name: "Ümraniye Finans Merkezi", Latitude: 41.0256, Longitude: 29.1089, District: "Ümraniye"},
		{Name: "Ataşehir Palladium", Latitude: 40.9823, Longitude: 29.1245, District: "Ataşehir"},
		{Name: "Üsküdar Kısıklı", Latitude: 41.0234, Longitude: 29.0312, District: "Üsküdar"},
		{Name: "Beykoz Çubuklu", Latitude: 41.1234, Longitude: 29.0923, District: "Beykoz"},
		{Name: "Çekmeköy Merkez", Latitude: 41.0323, Longitude: 29.1734, District: "Çekmeköy"},
		{Name: "Sancaktepe Samandıra", Latitude: 41.0145, Longitude: 29.2156, District: "Sancaktepe"},
		{Name: "Sultanbeyli Merkez", Latitude: 40.9612, Longitude: 29.2634, District: "Sultanbeyli"},
		{Name: "Şile Merkez", Latitude: 41.1756, Longitude: 29.6178, District: "Şile"},
		{Name: "Adalar Büyükada", Latitude: 40.8623, Longitude: 29.1234, District: "Adalar"},
		{Name: "Kartal Soğanlık", Latitude: 40.8934, Longitude: 29.2045, District: "Kartal"},
		{Name: "TEM Otoyolu Hadımköy", Latitude: 41.1234, Longitude: 28.6512, District: "Arnavutköy"},
		{Name: "E-5 Kartal Kavşağı", Latitude: 40.9145, Longitude: 29.1934, District: "Kartal"},
		{Name: "Kuzey Marmara Otoyolu Göktürk", Latitude: 41.1678, Longitude: 28.8634, District: "Eyüpsultan"},
		{Name: "Büyükçekmece TEM", Latitude: 41.0456, Longitude: 28.5612, District: "Büyükçekmece"},
		{Name: "Avcılar E-5", Latitude: 40.9868, Longitude: 28.7197, District: "Avcılar"},
	},
	"Ankara": {
		{Name: "Çankaya Kızılay", Latitude: 39.9194, Longitude: 32.854, District: "Çankaya"},
		{Name: "Keçiören Merkez", Latitude: 39.9678, Longitude: 32.8712, District: "Keçiören"},
		{Name: "Yenimahalle Demetevler", Latitude: 39.9456, Longitude: 32.7834, District: "Yenimahalle"},
		{Name: "Etimesgut Eryaman", Latitude: 39.9512, Longitude: 32.6834, District: "Etimesgut"},
		{Name: "Mamak Durali Alıç", Latitude: 39.9234, Longitude: 32.9123, District: "Mamak"},
		{Name: "Sincan Organize Sanayi", Latitude: 39.9723, Longitude: 32.5812, District: "Sincan"},
		{Name: "Pursaklar Saray", Latitude: 40.0312, Longitude: 32.9045, District: "Pursaklar"},
		{Name: "Altındağ Ulus", Latitude: 39.9447, Longitude: 32.8597, District: "Altındağ"},
		{Name: "Gölbaşı Mogan Gölü", Latitude: 39.7923, Longitude: 32.8156, District: "Gölbaşı"},
		{Name: "Polatlı Merkez", Latitude: 39.5812, Longitude: 32.1423, District: "Polatlı"},
		{Name: "Çamlıdere Yolu", Latitude: 40.0456, Longitude: 32.4678, District: "Çamlıdere"},
		{Name: "Beypazarı Merkez", Latitude: 40.1689, Longitude: 31.9212, District: "Beypazarı"},
		{Name: "Çubuk Merkez", Latitude: 40.2378, Longitude: 33.0234, District: "Çubuk"},
		{Name: "Elmadağ Merkez", Latitude: 39.9212, Longitude: 33.2345, District: "Elmadağ"},
		{Name: "Ankara Garı", Latitude: 39.9369, Longitude: 32.8519, District: "Altındağ"},
	},
	"İzmir": {
		{Name: "Konak Alsancak", Latitude: 38.4392, Longitude: 27.1478, District: "Konak"},
		{Name: "Karşıyaka İskelesi", Latitude: 38.4623, Longitude: 27.1089, District: "Karşıyaka"},
		{Name: "Bornova Forum", Latitude: 38.4489, Longitude: 27.2134, District: "Bornova"},
		{Name: "Buca Evka 3", Latitude: 38.3923, Longitude: 27.1756, District: "Buca"},
		{Name: "Gaziemir İzmir Ekonomi Üniversitesi", Latitude: 38.3234, Longitude: 27.1512, District: "Gaziemir"},
		{Name: "Balçova Teleferik", Latitude: 38.3812, Longitude: 27.0456, District: "Balçova"},
		{Name: "Çiğli Sasalı", Latitude: 38.5023, Longitude: 27.0312, District: "Çiğli"},
		{Name: "Bayraklı Mavişehir", Latitude: 38.4756, Longitude: 27.1612, District: "Bayraklı"},
		{Name: "Urla Merkez", Latitude: 38.3234, Longitude: 26.7645, District: "Urla"},
		{Name: "Çeşme Ilıca", Latitude: 38.3267, Longitude: 26.3689, District: "Çeşme"},
		{Name: "Karabağlar Metro İstasyonu", Latitude: 38.3745, Longitude: 27.1234, District: "Karabağlar"},
		{Name: "Narlıdere Sahil", Latitude: 38.3956, Longitude: 27.0234, District: "Narlıdere"},
	},
	"Antalya": {
		{Name: "Muratpaşa Migros AVM", Latitude: 36.8978, Longitude: 30.7123, District: "Muratpaşa"},
		{Name: "Kepez TerraCity", Latitude: 36.9456, Longitude: 30.7345, District: "Kepez"},
		{Name: "Konyaaltı Sahil", Latitude: 36.8745, Longitude: 30.6289, District: "Konyaaltı"},
		{Name: "Alanya Cleopatra Beach", Latitude: 36.5439, Longitude: 32.0, District: "Alanya"},
		{Name: "Manavgat Şelale", Latitude: 36.7889, Longitude: 31.4423, District: "Manavgat"},
		{Name: "Serik Belek", Latitude: 36.8634, Longitude: 31.0823, District: "Serik"},
		{Name: "Aksu Lara", Latitude: 36.8345, Longitude: 30.8456, District: "Aksu"},
		{Name: "Döşemealtı Korkuteli Yolu", Latitude: 36.9912, Longitude: 30.5923, District: "Döşemealtı"},
	},
	"Bursa": {
		{Name: "Osmangazi Korupark", Latitude: 40.2089, Longitude: 29.0234, District: "Osmangazi"},
		{Name: "Nilüfer Görükle", Latitude: 40.1826, Longitude: 29.0665, District: "Nilüfer"},
		{Name: "Yıldırım Setbaşı", Latitude: 40.1789, Longitude: 29.1123, District: "Yıldırım"},
		{Name: "Mudanya Sahil", Latitude: 40.3756, Longitude: 28.8834, District: "Mudanya"},
		{Name: "Gemlik Liman", Latitude: 40.4312, Longitude: 29.1567, District: "Gemlik"},
		{Name: "İnegöl Merkez", Latitude: 40.0789, Longitude: 29.5123, District: "İnegöl"},
		{Name: "Kestel Organize Sanayi", Latitude: 40.1956, Longitude: 29.2134, District: "Kestel"},
		{Name: "Osmangazi Zafer Plaza", Latitude: 40.1923, Longitude: 29.0612, District: "Osmangazi"},
		{Name: "Nilüfer Özlüce", Latitude: 40.2123, Longitude: 28.9845, District: "Nilüfer"},
		{Name: "Yıldırım Heykel", Latitude: 40.1845, Longitude: 29.0678, District: "Yıldırım"},
	},
	"Kocaeli": {
		{Name: "İzmit Center AVM", Latitude: 40.7654, Longitude: 29.9403, District: "İzmit"},
		{Name: "Gebze Gebze AVM", Latitude: 40.8023, Longitude: 29.4312, District: "Gebze"},
		{Name: "Gölcük Marinası", Latitude: 40.7156, Longitude: 29.8178, District: "Gölcük"},
		{Name: "Derince Liman", Latitude: 40.7523, Longitude: 29.8512, District: "Derince"},
		{Name: "Körfez Merkez", Latitude: 40.7712, Longitude: 29.7534, District: "Körfez"},
		{Name: "Çayırova OSB", Latitude: 40.8234, Longitude: 29.3812, District: "Çayırova"},
		{Name: "Kartepe Kayak Merkezi", Latitude: 40.7234, Longitude: 30.0812, District: "Kartepe"},
		{Name: "Başiskele Yuvacık", Latitude: 40.7812, Longitude: 29.8945, District: "Başiskele"},
	},
	"Muğla": {
		{Name: "Bodrum Merkez", Latitude: 37.0344, Longitude: 27.4305, District: "Bodrum"},
		{Name: "Marmaris İskele", Latitude: 36.8535, Longitude: 28.2744, District: "Marmaris"},
		{Name: "Fethiye Çalış", Latitude: 36.6223, Longitude: 29.1134, District: "Fethiye"},
		{Name: "Milas Havalimanı", Latitude: 37.2506, Longitude: 27.6639, District: "Milas"},
		{Name: "Dalaman Havalimanı", Latitude: 36.7131, Longitude: 28.7925, District: "Dalaman"},
		{Name: "Ortaca Merkez", Latitude: 36.8389, Longitude: 28.7644, District: "Ortaca"},
		{Name: "Köyceğiz Merkez", Latitude: 36.9689, Longitude: 28.6844, District: "Köyceğiz"},
		{Name: "Ula Merkez", Latitude: 37.1123, Longitude: 28.4112, District: "Ula"},
	},
	"Adana": {
		{Name: "Seyhan Optimum AVM", Latitude: 37.0, Longitude: 35.3213, District: "Seyhan"},
		{Name: "Çukurova M1 AVM", Latitude: 36.9834, Longitude: 35.3567, District: "Çukurova"},
		{Name: "Yüreğir Merkez", Latitude: 36.9456, Longitude: 35.3989, District: "Yüreğir"},
		{Name: "Sarıçam OSB", Latitude: 37.0823, Longitude: 35.3645, District: "Sarıçam"},
		{Name: "Ceyhan Merkez", Latitude: 37.0289, Longitude: 35.8156, District: "Ceyhan"},
		{Name: "Kozan Merkez", Latitude: 37.4456, Longitude: 35.8178, District: "Kozan"},
		{Name: "İmamoğlu Merkez", Latitude: 37.2645, Longitude: 35.6734, District: "İmamoğlu"},
	},
	"Mersin": {
		{Name: "Akdeniz Forum Mersin", Latitude: 36.8121, Longitude: 34.6415, District: "Akdeniz"},
		{Name: "Mezitli Marina", Latitude: 36.7623, Longitude: 34.5789, District: "Mezitli"},
		{Name: "Toroslar Merkez", Latitude: 36.8234, Longitude: 34.6789, District: "Toroslar"},
		{Name: "Yenişehir Cumhuriyet Meydanı", Latitude: 36.7945, Longitude: 34.6234, District: "Yenişehir"},
		{Name: "Tarsus Merkez", Latitude: 36.9178, Longitude: 34.8967, District: "Tarsus"},
		{Name: "Erdemli Sahil", Latitude: 36.6045, Longitude: 34.3067, District: "Erdemli"},
		{Name: "Silifke Merkez", Latitude: 36.3789, Longitude: 33.9345, District: "Silifke"},
	},
	"Konya": {
		{Name: "Selçuklu Kulesite", Latitude: 37.8756, Longitude: 32.4945, District: "Selçuklu"},
		{Name: "Meram Meram Park", Latitude: 37.8534, Longitude: 32.4678, District: "Meram"},
		{Name: "Karatay Alaeddin Tepesi", Latitude: 37.8712, Longitude: 32.4823, District: "Karatay"},
		{Name: "Ereğli Merkez", Latitude: 37.5123, Longitude: 34.0467, District: "Ereğli"},
		{Name: "Akşehir Merkez", Latitude: 38.3578, Longitude: 31.4156, District: "Akşehir"},
		{Name: "Beyşehir Gölü", Latitude: 37.6789, Longitude: 31.7234, District: "Beyşehir"},
	},
	"Aydın": {
		{Name: "Efeler Merkez", Latitude: 37.8456, Longitude: 27.8423, District: "Efeler"},
		{Name: "Kuşadası Marina", Latitude: 37.8585, Longitude: 27.2617, District: "Kuşadası"},
		{Name: "Nazilli Merkez", Latitude: 37.9134, Longitude: 28.3245, District: "Nazilli"},
		{Name: "Didim Altınkum", Latitude: 37.3723, Longitude: 27.2678, District: "Didim"},
		{Name: "Söke Merkez", Latitude: 37.7512, Longitude: 27.4089, District: "Söke"},
		{Name: "Germencik Merkez", Latitude: 37.8712, Longitude: 27.6034, District: "Germencik"},
	},
	"Balıkesir": {
		{Name: "Altıeylül Merkez", Latitude: 39.6489, Longitude: 27.8856, District: "Altıeylül"},
		{Name: "Karesi 10 Temmuz", Latitude: 39.6534, Longitude: 27.8923, District: "Karesi"},
		{Name: "Edremit Akçay", Latitude: 39.5934, Longitude: 27.0234, District: "Edremit"},
		{Name: "Ayvalık Merkez", Latitude: 39.3189, Longitude: 26.6934, District: "Ayvalık"},
		{Name: "Bandırma Liman", Latitude: 40.3523, Longitude: 27.9778, District: "Bandırma"},
		{Name: "Gönen Kaplıcaları", Latitude: 40.1067, Longitude: 27.6478, District: "Gönen"},
	},
	"Eskişehir": {
		{Name: "Odunpazarı Espark", Latitude: 39.7767, Longitude: 30.5256, District: "Odunpazarı"},
		{Name: "Tepebaşı Porsuk", Latitude: 39.7645, Longitude: 30.5434, District: "Tepebaşı"},
		{Name: "Sivrihisar Merkez", Latitude: 39.4489, Longitude: 31.5378, District: "Sivrihisar"},
		{Name: "Çifteler Merkez", Latitude: 39.3856, Longitude: 31.0445, District: "Çifteler"},
		{Name: "Mahmudiye Merkez", Latitude: 39.4923, Longitude: 31.2334, District: "Mahmudiye"},
	},
	"Denizli": {
		{Name: "Pamukkale Forum AVM", Latitude: 37.7742, Longitude: 29.0847, District: "Pamukkale"},
		{Name: "Merkezefendi Merkez", Latitude: 37.7623, Longitude: 29.1023, District: "Merkezefendi"},
		{Name: "Çivril Merkez", Latitude: 38.2989, Longitude: 29.7367, District: "Çivril"},
		{Name: "Acıpayam Merkez", Latitude: 37.4278, Longitude: 29.3456, District: "Acıpayam"},
		{Name: "Tavas Merkez", Latitude: 37.5745, Longitude: 29.0678, District: "Tavas"},
	},
	"Gaziantep": {
		{Name: "Şahinbey Sanko Park", Latitude: 37.0662, Longitude: 37.3833, District: "Şahinbey"},
		{Name: "Şehitkamil Forum", Latitude: 37.0456, Longitude: 37.3545, District: "Şehitkamil"},
		{Name: "Nizip Merkez", Latitude: 37.0089, Longitude: 37.7956, District: "Nizip"},
		{Name: "İslahiye Merkez", Latitude: 37.0278, Longitude: 36.6323, District: "İslahiye"},
		{Name: "Nurdağı Merkez", Latitude: 37.1756, Longitude: 37.1645, District: "Nurdağı"},
	},
	"Kayseri": {
		{Name: "Kocasinan Forum", Latitude: 38.7312, Longitude: 35.4856, District: "Kocasinan"},
		{Name: "Melikgazi Park AVM", Latitude: 38.7234, Longitude: 35.4678, District: "Melikgazi"},
		{Name: "Talas Merkez", Latitude: 38.6823, Longitude: 35.5545, District: "Talas"},
		{Name: "Develi Merkez", Latitude: 38.3889, Longitude: 35.4912, District: "Develi"},
	},
	"Tekirdağ": {
		{Name: "Süleymanpaşa Merkez", Latitude: 40.9778, Longitude: 27.5123, District: "Süleymanpaşa"},
		{Name: "Çorlu Merkez", Latitude: 41.1595, Longitude: 27.8006, District: "Çorlu"},
		{Name: "Çerkezköy OSB", Latitude: 41.2889, Longitude: 28.0134, District: "Çerkezköy"},
		{Name: "Malkara Merkez", Latitude: 40.8889, Longitude: 26.9012, District: "Malkara"},
		{Name: "Muratlı Merkez", Latitude: 41.1756, Longitude: 27.4989, District: "Muratlı"},
	},
	"Manisa": {
		{Name: "Yunusemre Merkez", Latitude: 38.6191, Longitude: 27.4289, District: "Yunusemre"},
		{Name: "Şehzadeler Forum", Latitude: 38.6078, Longitude: 27.4567, District: "Şehzadeler"},
		{Name: "Turgutlu Merkez", Latitude: 38.5023, Longitude: 27.7023, District: "Turgutlu"},
		{Name: "Akhisar Merkez", Latitude: 38.9189, Longitude: 27.8378, District: "Akhisar"},
		{Name: "Salihli Merkez", Latitude: 38.4823, Longitude: 28.1389, District: "Salihli"},
	},
	"Sakarya": {
		{Name: "Adapazarı Kent Meydanı", Latitude: 40.7569, Longitude: 30.4058, District: "Adapazarı"},
		{Name: "Serdivan Merkez", Latitude: 40.7812, Longitude: 30.3645, District: "Serdivan"},
		{Name: "Akyazı Merkez", Latitude: 40.6856, Longitude: 30.6245, District: "Akyazı"},
		{Name: "Geyve Merkez", Latitude: 40.5078, Longitude: 30.2934, District: "Geyve"},
		{Name: "Hendek Merkez", Latitude: 40.7978, Longitude: 30.7489, District: "Hendek"},
	},
	"Çanakkale": {
		{Name: "Merkez Kordon", Latitude: 40.1553, Longitude: 26.4142, District: "Merkez"},
		{Name: "Biga Merkez", Latitude: 40.2289, Longitude: 27.2456, District: "Biga"},
		{Name: "Gelibolu Liman", Latitude: 40.4078, Longitude: 26.6712, District: "Gelibolu"},
		{Name: "Çan Merkez", Latitude: 40.0356, Longitude: 27.0534, District: "Çan"},
		{Name: "Ayvacık Merkez", Latitude: 39.6012, Longitude: 26.4045, District: "Ayvacık"},
	},
}
