package catalog

// Default 기본 정적 카탈로그. 선언 순서가 동점 판정 순서이므로 항목 순서를 바꾸면 안 된다.
func Default() *Catalog {
	return &Catalog{
		Brands:           NewBrandCatalog(defaultBrands),
		Ingredients:      NewIngredientDictionary(defaultIngredients),
		BeverageKeywords: NewKeywordSet(defaultBeverageKeywords...),
		NonFoodLabels:    NewKeywordSet(defaultNonFoodLabels...),
		LabelNames:       defaultLabelNames,
		FallbackNames:    defaultFallbackNames,
	}
}

// defaultBrands 브랜드→카테고리→정식 제품명
var defaultBrands = []Brand{
	{Name: "농심", Categories: []BrandCategory{
		{Name: "라면", Products: []string{"신라면", "짜파게티", "너구리", "안성탕면", "육개장"}},
		{Name: "스낵", Products: []string{"새우깡", "양파링", "포테토칩", "바나나킥"}},
		{Name: "음료", Products: []string{"백산수"}},
	}},
	{Name: "오뚜기", Categories: []BrandCategory{
		{Name: "라면", Products: []string{"진라면", "스낵면", "참깨라면", "진짬뽕"}},
		{Name: "소스", Products: []string{"토마토케찹", "마요네즈", "허니머스타드"}},
		{Name: "가공식품", Products: []string{"오뚜기밥", "3분카레", "옛날사골곰탕"}},
	}},
	{Name: "삼양", Categories: []BrandCategory{
		{Name: "라면", Products: []string{"불닭볶음면", "삼양라면", "까르보불닭"}},
	}},
	{Name: "매일", Categories: []BrandCategory{
		{Name: "유제품", Products: []string{"매일우유", "매일두유", "상하치즈", "바이오요거트"}},
		{Name: "음료", Products: []string{"카페라떼", "아몬드브리즈"}},
	}},
	{Name: "서울우유", Categories: []BrandCategory{
		{Name: "유제품", Products: []string{"흰우유", "딸기우유", "초코우유", "체다치즈"}},
	}},
	{Name: "빙그레", Categories: []BrandCategory{
		{Name: "유제품", Products: []string{"바나나맛우유", "요플레", "딸기맛우유"}},
	}},
	{Name: "롯데", Categories: []BrandCategory{
		{Name: "음료", Products: []string{"칠성사이다", "밀키스", "레쓰비"}},
		{Name: "제과", Products: []string{"초코파이", "빼빼로", "꼬깔콘"}},
	}},
	{Name: "코카콜라", Categories: []BrandCategory{
		{Name: "음료", Products: []string{"코카콜라", "스프라이트", "환타", "토레타"}},
	}},
	{Name: "동원", Categories: []BrandCategory{
		{Name: "통조림", Products: []string{"동원참치", "리챔"}},
		{Name: "가공식품", Products: []string{"동원김치", "양반김"}},
	}},
	{Name: "CJ", Categories: []BrandCategory{
		{Name: "가공식품", Products: []string{"스팸", "햇반", "비비고만두", "비비고김치"}},
		{Name: "조미료", Products: []string{"백설설탕", "백설밀가루", "다시다"}},
	}},
	{Name: "풀무원", Categories: []BrandCategory{
		{Name: "가공식품", Products: []string{"풀무원두부", "풀무원콩나물", "생면식감"}},
	}},
	{Name: "오리온", Categories: []BrandCategory{
		{Name: "제과", Products: []string{"초코파이", "포카칩", "오징어땅콩", "고래밥"}},
	}},
	{Name: "해태", Categories: []BrandCategory{
		{Name: "제과", Products: []string{"홈런볼", "맛동산", "에이스"}},
	}},
	{Name: "광동", Categories: []BrandCategory{
		{Name: "음료", Products: []string{"비타500", "옥수수수염차", "헛개차"}},
	}},
}

// defaultIngredients 카테고리→식재료명. 앞에 오는 항목이 동점 시 우선한다.
var defaultIngredients = []IngredientCategory{
	{Name: "채소", Ingredients: []string{
		"양파", "당근", "감자", "고구마", "대파", "마늘", "오이", "상추", "배추",
		"양배추", "고추", "버섯", "애호박", "브로콜리", "시금치", "콩나물", "무",
	}},
	{Name: "과일", Ingredients: []string{
		"사과", "바나나", "딸기", "포도", "수박", "토마토", "레몬", "키위", "오렌지", "복숭아", "참외",
	}},
	{Name: "육류", Ingredients: []string{
		"돼지고기", "소고기", "닭고기", "닭가슴살", "삼겹살", "베이컨", "소시지", "햄",
	}},
	{Name: "수산물", Ingredients: []string{
		"고등어", "갈치", "오징어", "새우", "멸치", "김", "미역", "어묵",
	}},
	{Name: "유제품", Ingredients: []string{
		"우유", "두유", "치즈", "버터", "요거트", "요구르트", "생크림",
	}},
	{Name: "계란", Ingredients: []string{
		"계란", "달걀", "메추리알",
	}},
	{Name: "양념", Ingredients: []string{
		"고추장", "된장", "간장", "쌈장", "소금", "설탕", "식초", "참기름", "들기름",
		"고춧가루", "후추", "마요네즈", "케찹",
	}},
	{Name: "곡물", Ingredients: []string{
		"쌀", "현미", "잡곡", "밀가루", "빵", "라면", "국수", "파스타", "떡",
	}},
	{Name: "음료", Ingredients: []string{
		"주스", "콜라", "사이다", "커피", "녹차", "보리차", "탄산수", "이온음료",
	}},
	{Name: "가공식품", Ingredients: []string{
		"두부", "만두", "참치캔", "통조림", "김치", "단무지", "맛살",
	}},
}

// defaultBeverageKeywords 음료 판별 키워드
var defaultBeverageKeywords = []string{
	"우유", "두유", "주스", "음료", "콜라", "사이다", "커피", "라떼",
	"녹차", "홍차", "보리차", "헛개차", "탄산", "에이드", "워터", "생수",
	"요구르트", "스무디", "식혜",
}

// defaultNonFoodLabels 식품으로 취급하면 안 되는 탐지 라벨
var defaultNonFoodLabels = []string{
	"bottle", "cup", "bowl", "plate", "spoon", "fork", "knife", "chopsticks",
	"refrigerator", "oven", "microwave", "sink", "toaster", "scissors",
	"person", "hand", "table", "dining table", "chair", "cabinet",
	"container", "jar", "box", "bag", "packet", "wrapper", "can",
	"book", "cell phone", "clock", "vase", "potted plant",
}

// defaultLabelNames 탐지 라벨(영문)→현지 식재료명 사전. 정확 일치 우선, 부분 일치 차선.
var defaultLabelNames = []LabelTranslation{
	{Label: "apple", Name: "사과"},
	{Label: "banana", Name: "바나나"},
	{Label: "orange", Name: "오렌지"},
	{Label: "carrot", Name: "당근"},
	{Label: "broccoli", Name: "브로콜리"},
	{Label: "onion", Name: "양파"},
	{Label: "potato", Name: "감자"},
	{Label: "tomato", Name: "토마토"},
	{Label: "cucumber", Name: "오이"},
	{Label: "cabbage", Name: "양배추"},
	{Label: "lettuce", Name: "상추"},
	{Label: "garlic", Name: "마늘"},
	{Label: "mushroom", Name: "버섯"},
	{Label: "strawberry", Name: "딸기"},
	{Label: "grape", Name: "포도"},
	{Label: "watermelon", Name: "수박"},
	{Label: "lemon", Name: "레몬"},
	{Label: "egg", Name: "계란"},
	{Label: "milk", Name: "우유"},
	{Label: "cheese", Name: "치즈"},
	{Label: "bread", Name: "빵"},
	{Label: "cake", Name: "케이크"},
	{Label: "pizza", Name: "피자"},
	{Label: "sandwich", Name: "샌드위치"},
	{Label: "hot dog", Name: "핫도그"},
	{Label: "donut", Name: "도넛"},
	{Label: "chicken", Name: "닭고기"},
	{Label: "beef", Name: "소고기"},
	{Label: "pork", Name: "돼지고기"},
	{Label: "fish", Name: "생선"},
	{Label: "shrimp", Name: "새우"},
	{Label: "rice", Name: "쌀"},
	{Label: "noodle", Name: "국수"},
	{Label: "tofu", Name: "두부"},
}

// defaultFallbackNames 추론 서비스까지 실패했을 때의 최종 로컬 폴백 사전
var defaultFallbackNames = []CategoryKeyword{
	{Keyword: "라면", Name: "라면"},
	{Keyword: "우유", Name: "우유"},
	{Keyword: "두유", Name: "두유"},
	{Keyword: "주스", Name: "주스"},
	{Keyword: "김치", Name: "김치"},
	{Keyword: "치즈", Name: "치즈"},
	{Keyword: "두부", Name: "두부"},
	{Keyword: "계란", Name: "계란"},
	{Keyword: "만두", Name: "만두"},
	{Keyword: "참치", Name: "참치캔"},
	{Keyword: "요거트", Name: "요거트"},
	{Keyword: "커피", Name: "커피"},
	{Keyword: "콜라", Name: "콜라"},
	{Keyword: "사이다", Name: "사이다"},
	{Keyword: "과자", Name: "과자"},
	{Keyword: "스낵", Name: "과자"},
	{Keyword: "음료", Name: "음료"},
}
