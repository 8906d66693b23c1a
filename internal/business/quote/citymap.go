package quote

// cityProvinceMap 城市 → 所属省份静态表
// 用于在只匹配到城市级地点时推导父级省份候选
var cityProvinceMap = map[string]string{
	// 广东省
	"阳江市": "广东省", "清远市": "广东省", "韶关市": "广东省", "茂名市": "广东省",
	"湛江市": "广东省", "云浮市": "广东省", "肇庆市": "广东省", "广州市": "广东省",
	"深圳市": "广东省", "珠海市": "广东省", "汕头市": "广东省", "佛山市": "广东省",
	"江门市": "广东省", "惠州市": "广东省", "梅州市": "广东省", "汕尾市": "广东省",
	"河源市": "广东省", "东莞市": "广东省", "中山市": "广东省", "潮州市": "广东省",
	"揭阳市": "广东省",

	// 江苏省
	"南京市": "江苏省", "苏州市": "江苏省", "无锡市": "江苏省", "常州市": "江苏省",
	"镇江市": "江苏省", "扬州市": "江苏省", "泰州市": "江苏省", "南通市": "江苏省",
	"徐州市": "江苏省", "淮安市": "江苏省", "盐城市": "江苏省", "连云港市": "江苏省",
	"宿迁市": "江苏省",

	// 浙江省
	"杭州市": "浙江省", "宁波市": "浙江省", "温州市": "浙江省", "嘉兴市": "浙江省",
	"湖州市": "浙江省", "绍兴市": "浙江省", "金华市": "浙江省", "衢州市": "浙江省",
	"舟山市": "浙江省", "台州市": "浙江省", "丽水市": "浙江省",

	// 山东省
	"济南市": "山东省", "青岛市": "山东省", "淄博市": "山东省", "枣庄市": "山东省",
	"东营市": "山东省", "烟台市": "山东省", "潍坊市": "山东省", "济宁市": "山东省",
	"泰安市": "山东省", "威海市": "山东省", "日照市": "山东省", "临沂市": "山东省",
	"德州市": "山东省", "聊城市": "山东省", "滨州市": "山东省", "菏泽市": "山东省",

	// 河北省
	"石家庄市": "河北省", "唐山市": "河北省", "秦皇岛市": "河北省", "邯郸市": "河北省",
	"邢台市": "河北省", "保定市": "河北省", "张家口市": "河北省", "承德市": "河北省",
	"沧州市": "河北省", "廊坊市": "河北省", "衡水市": "河北省",

	// 河南省
	"郑州市": "河南省", "开封市": "河南省", "洛阳市": "河南省", "平顶山市": "河南省",
	"安阳市": "河南省", "鹤壁市": "河南省", "新乡市": "河南省", "焦作市": "河南省",
	"濮阳市": "河南省", "许昌市": "河南省", "漯河市": "河南省", "三门峡市": "河南省",
	"南阳市": "河南省", "商丘市": "河南省", "信阳市": "河南省", "周口市": "河南省",
	"驻马店市": "河南省", "济源市": "河南省",

	// 四川省
	"成都市": "四川省", "自贡市": "四川省", "攀枝花市": "四川省", "泸州市": "四川省",
	"德阳市": "四川省", "绵阳市": "四川省", "广元市": "四川省", "遂宁市": "四川省",
	"内江市": "四川省", "乐山市": "四川省", "南充市": "四川省", "眉山市": "四川省",
	"宜宾市": "四川省", "广安市": "四川省", "达州市": "四川省", "雅安市": "四川省",
	"巴中市": "四川省", "资阳市": "四川省",

	// 湖北省
	"武汉市": "湖北省", "黄石市": "湖北省", "十堰市": "湖北省", "宜昌市": "湖北省",
	"襄阳市": "湖北省", "鄂州市": "湖北省", "荆门市": "湖北省", "孝感市": "湖北省",
	"荆州市": "湖北省", "黄冈市": "湖北省", "咸宁市": "湖北省", "随州市": "湖北省",

	// 湖南省
	"长沙市": "湖南省", "株洲市": "湖南省", "湘潭市": "湖南省", "衡阳市": "湖南省",
	"邵阳市": "湖南省", "岳阳市": "湖南省", "常德市": "湖南省", "张家界市": "湖南省",
	"益阳市": "湖南省", "郴州市": "湖南省", "永州市": "湖南省", "怀化市": "湖南省",
	"娄底市": "湖南省",

	// 安徽省
	"合肥市": "安徽省", "芜湖市": "安徽省", "蚌埠市": "安徽省", "淮南市": "安徽省",
	"马鞍山市": "安徽省", "淮北市": "安徽省", "铜陵市": "安徽省", "安庆市": "安徽省",
	"黄山市": "安徽省", "滁州市": "安徽省", "阜阳市": "安徽省", "宿州市": "安徽省",
	"六安市": "安徽省", "亳州市": "安徽省", "池州市": "安徽省", "宣城市": "安徽省",

	// 福建省
	"福州市": "福建省", "厦门市": "福建省", "莆田市": "福建省", "三明市": "福建省",
	"泉州市": "福建省", "漳州市": "福建省", "南平市": "福建省", "龙岩市": "福建省",
	"宁德市": "福建省",

	// 江西省
	"南昌市": "江西省", "景德镇市": "江西省", "萍乡市": "江西省", "九江市": "江西省",
	"新余市": "江西省", "鹰潭市": "江西省", "赣州市": "江西省", "吉安市": "江西省",
	"宜春市": "江西省", "抚州市": "江西省", "上饶市": "江西省",

	// 辽宁省
	"沈阳市": "辽宁省", "大连市": "辽宁省", "鞍山市": "辽宁省", "抚顺市": "辽宁省",
	"本溪市": "辽宁省", "丹东市": "辽宁省", "锦州市": "辽宁省", "营口市": "辽宁省",
	"阜新市": "辽宁省", "辽阳市": "辽宁省", "盘锦市": "辽宁省", "铁岭市": "辽宁省",
	"朝阳市": "辽宁省", "葫芦岛市": "辽宁省",

	// 吉林省
	"长春市": "吉林省", "吉林市": "吉林省", "四平市": "吉林省", "辽源市": "吉林省",
	"通化市": "吉林省", "白山市": "吉林省", "松原市": "吉林省", "白城市": "吉林省",

	// 黑龙江省
	"哈尔滨市": "黑龙江省", "齐齐哈尔市": "黑龙江省", "鸡西市": "黑龙江省", "鹤岗市": "黑龙江省",
	"双鸭山市": "黑龙江省", "大庆市": "黑龙江省", "伊春市": "黑龙江省", "佳木斯市": "黑龙江省",
	"七台河市": "黑龙江省", "牡丹江市": "黑龙江省", "黑河市": "黑龙江省", "绥化市": "黑龙江省",

	// 陕西省
	"西安市": "陕西省", "铜川市": "陕西省", "宝鸡市": "陕西省", "咸阳市": "陕西省",
	"渭南市": "陕西省", "延安市": "陕西省", "汉中市": "陕西省", "榆林市": "陕西省",
	"安康市": "陕西省", "商洛市": "陕西省",

	// 甘肃省
	"兰州市": "甘肃省", "嘉峪关市": "甘肃省", "金昌市": "甘肃省", "白银市": "甘肃省",
	"天水市": "甘肃省", "武威市": "甘肃省", "张掖市": "甘肃省", "平凉市": "甘肃省",
	"酒泉市": "甘肃省", "庆阳市": "甘肃省", "定西市": "甘肃省", "陇南市": "甘肃省",

	// 青海省
	"西宁市": "青海省", "海东市": "青海省",

	// 宁夏回族自治区
	"银川市": "宁夏回族自治区", "石嘴山市": "宁夏回族自治区", "吴忠市": "宁夏回族自治区",
	"固原市": "宁夏回族自治区", "中卫市": "宁夏回族自治区",

	// 新疆维吾尔自治区
	"乌鲁木齐市": "新疆维吾尔自治区", "克拉玛依市": "新疆维吾尔自治区",

	// 西藏自治区
	"拉萨市": "西藏自治区", "日喀则市": "西藏自治区", "昌都市": "西藏自治区",
	"林芝市": "西藏自治区", "山南市": "西藏自治区", "那曲市": "西藏自治区",

	// 内蒙古自治区
	"呼和浩特市": "内蒙古自治区", "包头市": "内蒙古自治区", "乌海市": "内蒙古自治区",
	"赤峰市": "内蒙古自治区", "通辽市": "内蒙古自治区", "鄂尔多斯市": "内蒙古自治区",
	"呼伦贝尔市": "内蒙古自治区", "巴彦淖尔市": "内蒙古自治区", "乌兰察布市": "内蒙古自治区",

	// 广西壮族自治区
	"南宁市": "广西壮族自治区", "柳州市": "广西壮族自治区", "桂林市": "广西壮族自治区",
	"梧州市": "广西壮族自治区", "北海市": "广西壮族自治区", "防城港市": "广西壮族自治区",
	"钦州市": "广西壮族自治区", "贵港市": "广西壮族自治区", "玉林市": "广西壮族自治区",
	"百色市": "广西壮族自治区", "贺州市": "广西壮族自治区", "河池市": "广西壮族自治区",
	"来宾市": "广西壮族自治区", "崇左市": "广西壮族自治区",

	// 云南省
	"昆明市": "云南省", "曲靖市": "云南省", "玉溪市": "云南省", "保山市": "云南省",
	"昭通市": "云南省", "丽江市": "云南省", "普洱市": "云南省", "临沧市": "云南省",
	"大理白族自治州": "云南省", "西双版纳傣族自治州": "云南省", "楚雄彝族自治州": "云南省",

	// 贵州省
	"贵阳市": "贵州省", "六盘水市": "贵州省", "遵义市": "贵州省", "安顺市": "贵州省",
	"毕节市": "贵州省", "铜仁市": "贵州省",

	// 海南省
	"海口市": "海南省", "三亚市": "海南省",

	// 山西省
	"太原市": "山西省", "大同市": "山西省", "阳泉市": "山西省", "长治市": "山西省",
	"晋城市": "山西省", "朔州市": "山西省", "晋中市": "山西省", "运城市": "山西省",
	"忻州市": "山西省", "临汾市": "山西省", "吕梁市": "山西省",

	// 直辖市（市级与省级同名）
	"北京市": "北京市", "天津市": "天津市", "上海市": "上海市", "重庆市": "重庆市",

	// 特别行政区
	"香港特别行政区": "香港特别行政区", "澳门特别行政区": "澳门特别行政区",

	// 台湾省
	"台北市": "台湾省", "高雄市": "台湾省", "台中市": "台湾省", "台南市": "台湾省",
	"新北市": "台湾省", "桃园市": "台湾省", "基隆市": "台湾省", "新竹市": "台湾省",
	"嘉义市": "台湾省",
}

// ProvinceOfCity 从城市名推导省份名，如 "清远市" → "广东省"
// 查不到时返回空串
func ProvinceOfCity(cityName string) string {
	return cityProvinceMap[cityName]
}
