package repository

import "go_5_english_tutor/internal/model"

// DefaultWordBank は設定で単語帳が指定されていないときの10語
func DefaultWordBank() []model.VocabularyEntry {
	return []model.VocabularyEntry{
		{
			ID:            1,
			Term:          "Happy",
			Meaning:       "Feeling or showing pleasure or contentment",
			KoreanMeaning: "행복한, 기쁜",
			Pronunciation: "/ˈhæpi/",
			Example:       "I am very happy today because it's sunny.",
			KoreanExample: "날씨가 좋아서 오늘 정말 행복해요.",
			Difficulty:    model.DifficultyBeginner,
		},
		{
			ID:            2,
			Term:          "Friend",
			Meaning:       "A person you know well and like",
			KoreanMeaning: "친구",
			Pronunciation: "/frend/",
			Example:       "She is my best friend from school.",
			KoreanExample: "그녀는 학교에서 만난 제 베스트 프렌드예요.",
			Difficulty:    model.DifficultyBeginner,
		},
		{
			ID:            3,
			Term:          "Beautiful",
			Meaning:       "Pleasing to the senses or mind; attractive",
			KoreanMeaning: "아름다운, 예쁜",
			Pronunciation: "/ˈbjuːtɪfəl/",
			Example:       "The sunset was beautiful tonight.",
			KoreanExample: "오늘 저녁 노을이 정말 아름다웠어요.",
			Difficulty:    model.DifficultyBeginner,
		},
		{
			ID:            4,
			Term:          "Important",
			Meaning:       "Of great significance or value",
			KoreanMeaning: "중요한",
			Pronunciation: "/ɪmˈpɔːtənt/",
			Example:       "It is important to eat healthy food.",
			KoreanExample: "건강한 음식을 먹는 것은 중요해요.",
			Difficulty:    model.DifficultyBeginner,
		},
		{
			ID:            5,
			Term:          "Comfortable",
			Meaning:       "Providing physical ease and relaxation",
			KoreanMeaning: "편안한",
			Pronunciation: "/ˈkʌmftəbəl/",
			Example:       "This chair is very comfortable to sit in.",
			KoreanExample: "이 의자는 앉기에 정말 편안해요.",
			Difficulty:    model.DifficultyIntermediate,
		},
		{
			ID:            6,
			Term:          "Interesting",
			Meaning:       "Arousing curiosity or attention",
			KoreanMeaning: "흥미로운, 재미있는",
			Pronunciation: "/ˈɪntrəstɪŋ/",
			Example:       "The movie was very interesting and fun.",
			KoreanExample: "그 영화는 정말 흥미롭고 재미있었어요.",
			Difficulty:    model.DifficultyBeginner,
		},
		{
			ID:            7,
			Term:          "Difficult",
			Meaning:       "Hard to do or understand",
			KoreanMeaning: "어려운",
			Pronunciation: "/ˈdɪfɪkəlt/",
			Example:       "Math can be difficult, but practice helps.",
			KoreanExample: "수학은 어려울 수 있지만, 연습하면 도움이 돼요.",
			Difficulty:    model.DifficultyBeginner,
		},
		{
			ID:            8,
			Term:          "Popular",
			Meaning:       "Liked or admired by many people",
			KoreanMeaning: "인기 있는",
			Pronunciation: "/ˈpɑːpjələr/",
			Example:       "This song is very popular right now.",
			KoreanExample: "이 노래는 지금 정말 인기가 많아요.",
			Difficulty:    model.DifficultyBeginner,
		},
		{
			ID:            9,
			Term:          "Delicious",
			Meaning:       "Highly pleasant to taste",
			KoreanMeaning: "맛있는",
			Pronunciation: "/dɪˈlɪʃəs/",
			Example:       "The cake was delicious and sweet.",
			KoreanExample: "그 케이크는 맛있고 달콤했어요.",
			Difficulty:    model.DifficultyBeginner,
		},
		{
			ID:            10,
			Term:          "Excited",
			Meaning:       "Feeling very enthusiastic and eager",
			KoreanMeaning: "신나는, 들뜬",
			Pronunciation: "/ɪkˈsaɪtɪd/",
			Example:       "I'm excited about the school trip tomorrow.",
			KoreanExample: "내일 수학여행이 가서 정말 신나요.",
			Difficulty:    model.DifficultyBeginner,
		},
	}
}
