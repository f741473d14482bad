package quiz

import "github.com/Maxime-Guy/twigane/internal/model"

// questionSet holds one category of the bank: either leveled by difficulty
// or a flat list with no difficulty split.
type questionSet struct {
	levels map[string][]model.QuizQuestion
	flat   []model.QuizQuestion
}

// bank is the static question database, keyed by category. Vocabulary,
// grammar and culture are split by difficulty; pronunciation and numbers
// are flat.
var bank = map[string]questionSet{
	"vocabulary": {levels: map[string][]model.QuizQuestion{
		"beginner": {
			q("vocab_001", "What does 'Muraho' mean in English?", []string{"Hello", "Goodbye", "Thank you", "Please"}, 0, "'Muraho' is a common greeting meaning 'Hello' in Kinyarwanda."),
			q("vocab_002", "How do you say 'Thank you' in Kinyarwanda?", []string{"Murakoze", "Muraho", "Murakomeye", "Mwaramutse"}, 0, "'Murakoze' is the standard way to say 'Thank you' in Kinyarwanda."),
			q("vocab_003", "What is the Kinyarwanda word for 'water'?", []string{"Ubuki", "Amazi", "Amata", "Ikawa"}, 1, "'Amazi' means water in Kinyarwanda."),
			q("vocab_004", "How do you say 'Good morning' in Kinyarwanda?", []string{"Mwiriwe", "Mwaramutse", "Ijoro ryiza", "Umunsi mwiza"}, 1, "'Mwaramutse' is used to greet someone in the morning."),
			q("vocab_005", "What does 'Amakuru' mean?", []string{"Food", "News/How are things", "School", "Money"}, 1, "'Amakuru' means 'news' or is used to ask 'how are things?'"),
			q("vocab_006", "What is the Kinyarwanda word for 'book'?", []string{"Igitabo", "Ikaramu", "Ikawa", "Igikoni"}, 0, "'Igitabo' means book in Kinyarwanda."),
			q("vocab_007", "How do you say 'house' in Kinyarwanda?", []string{"Inzu", "Ishuri", "Isoko", "Ikigo"}, 0, "'Inzu' means house or home in Kinyarwanda."),
			q("vocab_008", "How do you say 'Yes' in Kinyarwanda?", []string{"Oya", "Yego", "Ariko", "Kandi"}, 1, "'Yego' means 'yes' in Kinyarwanda."),
			q("vocab_009", "What does 'Oya' mean?", []string{"Yes", "No", "Maybe", "Always"}, 1, "'Oya' means 'no' in Kinyarwanda."),
			q("vocab_010", "What is the Kinyarwanda word for 'child'?", []string{"Umugabo", "Umugore", "Umwana", "Umusaza"}, 2, "'Umwana' means child in Kinyarwanda."),
			q("vocab_011", "How do you say 'food' in Kinyarwanda?", []string{"Ibiryo", "Amazi", "Ikawa", "Ubuki"}, 0, "'Ibiryo' means food in Kinyarwanda."),
			q("vocab_012", "How do you say 'friend' in Kinyarwanda?", []string{"Inshuti", "Munyangezi", "Umucuruzi", "Umunyeshuri"}, 0, "'Inshuti' means friend in Kinyarwanda."),
		},
		"intermediate": {
			q("vocab_101", "What is the meaning of 'Ubwoba'?", []string{"Love", "Fear", "Joy", "Anger"}, 1, "'Ubwoba' means fear in Kinyarwanda."),
			q("vocab_102", "How do you say 'to study' in Kinyarwanda?", []string{"Kwiga", "Gusoma", "Kwandika", "Gukora"}, 0, "'Kwiga' means to study or to learn in Kinyarwanda."),
			q("vocab_103", "What does 'Ubwiyunge' mean?", []string{"Happiness", "Sadness", "Patience", "Wisdom"}, 2, "'Ubwiyunge' means patience in Kinyarwanda."),
			q("vocab_104", "What is 'Inyama' in English?", []string{"Vegetables", "Meat", "Rice", "Bread"}, 1, "'Inyama' means meat in Kinyarwanda."),
			q("vocab_105", "What does 'Umurimo' mean?", []string{"Work/Job", "Holiday", "Rest", "Play"}, 0, "'Umurimo' means work or job in Kinyarwanda."),
			q("vocab_106", "How do you say 'to write' in Kinyarwanda?", []string{"Gusoma", "Kwandika", "Gukora", "Kwiga"}, 1, "'Kwandika' means to write in Kinyarwanda."),
		},
		"advanced": {
			q("vocab_201", "What does 'Ubunyangamugayo' mean?", []string{"Honesty/Integrity", "Happiness", "Courage", "Patience"}, 0, "'Ubunyangamugayo' means honesty or integrity in Kinyarwanda."),
			q("vocab_202", "What is 'Ubwenge' in English?", []string{"Strength", "Intelligence/Wisdom", "Kindness", "Beauty"}, 1, "'Ubwenge' means intelligence or wisdom in Kinyarwanda."),
			q("vocab_203", "What does 'Urukundo' mean?", []string{"Hatred", "Love", "Friendship", "Peace"}, 1, "'Urukundo' means love in Kinyarwanda."),
			q("vocab_204", "What is 'Amahoro' in English?", []string{"War", "Peace", "Joy", "Hope"}, 1, "'Amahoro' means peace in Kinyarwanda."),
		},
	}},
	"grammar": {levels: map[string][]model.QuizQuestion{
		"beginner": {
			q("gram_001", "In Kinyarwanda, what is the correct way to ask 'What is your name?'", []string{"Witwa nde?", "Wita rite?", "Uziko wita rite?", "Witwa gute?"}, 0, "'Witwa nde?' is the standard way to ask someone's name."),
			q("gram_002", "How do you say 'I am called...' in Kinyarwanda?", []string{"Nitwa...", "Nkunda...", "Ndi...", "Nzi..."}, 0, "'Nitwa...' followed by your name is how you introduce yourself."),
			q("gram_003", "What is the correct plural form of 'umuntu' (person)?", []string{"umuntu", "abantu", "umuntu-ntu", "bantu"}, 1, "The plural of 'umuntu' is 'abantu' (people)."),
			q("gram_004", "How do you say 'I am' in Kinyarwanda?", []string{"Ndi", "Uri", "Ari", "Turi"}, 0, "'Ndi' means 'I am' in Kinyarwanda."),
			q("gram_005", "What is the plural of 'igitabo' (book)?", []string{"igitabo", "ibitabo", "amatabo", "ubutabo"}, 1, "The plural of 'igitabo' is 'ibitabo'."),
			q("gram_006", "How do you say 'We are' in Kinyarwanda?", []string{"Ndi", "Uri", "Turi", "Bari"}, 2, "'Turi' means 'we are' in Kinyarwanda."),
		},
		"intermediate": {
			q("gram_101", "What is the subject prefix for 'I' in Kinyarwanda verbs?", []string{"n-", "u-", "a-", "tu-"}, 0, "'n-' is the subject prefix for 'I' in Kinyarwanda verbs."),
			q("gram_102", "How do you say 'You are' (plural) in Kinyarwanda?", []string{"Uri", "Turi", "Muri", "Bari"}, 2, "'Muri' means 'you are' (plural) in Kinyarwanda."),
			q("gram_103", "What class does 'inzu' (house) belong to?", []string{"Class 1/2", "Class 9/10", "Class 7/8", "Class 5/6"}, 1, "'Inzu' belongs to class 9/10 (in-/in-)."),
			q("gram_104", "What is the plural of 'umwana' (child)?", []string{"abana", "imwana", "amana", "ubwana"}, 0, "The plural of 'umwana' is 'abana' (children)."),
		},
		"advanced": {
			q("gram_201", "How do you form the negative of 'Ndi umwarimu' (I am a teacher)?", []string{"Sindi umwarimu", "Ntabwo ndi umwarimu", "Oya ndi umwarimu", "Nta umwarimu"}, 0, "'Sindi umwarimu' means 'I am not a teacher'."),
			q("gram_202", "What is the plural of 'inyama' (meat)?", []string{"inyama", "amanyama", "ubwanyama", "inyama nyinshi"}, 1, "The plural of 'inyama' is 'amanyama'."),
			q("gram_203", "What is the correct form: 'He/She is a teacher'?", []string{"Ni umwarimu", "Ari umwarimu", "Uri umwarimu", "Ndi umwarimu"}, 1, "'Ari umwarimu' means 'He/She is a teacher'."),
		},
	}},
	"culture": {levels: map[string][]model.QuizQuestion{
		"beginner": {
			q("cult_001", "What is the traditional greeting gesture in Rwandan culture?", []string{"Bowing", "Handshake", "Hug", "Wave"}, 1, "A handshake is the common traditional greeting in Rwandan culture."),
			q("cult_002", "What is 'Ubusabane'?", []string{"A dance", "Traditional sharing/hospitality", "A food", "A ceremony"}, 1, "'Ubusabane' refers to the Rwandan tradition of sharing and hospitality."),
			q("cult_003", "What is the traditional Rwandan basket called?", []string{"Agaseke", "Igikoni", "Urukundo", "Umudende"}, 0, "'Agaseke' is the traditional Rwandan peace basket."),
		},
		"intermediate": {
			q("cult_101", "What is 'Umuganura'?", []string{"New Year", "Harvest festival", "Wedding ceremony", "Birth ritual"}, 1, "'Umuganura' is the traditional harvest festival in Rwanda."),
			q("cult_102", "What is the traditional Rwandan dance called?", []string{"Intore", "Ubwiyunge", "Ubunyangamugayo", "Ubwoba"}, 0, "'Intore' is the traditional Rwandan warrior dance."),
			q("cult_103", "In Rwandan culture, what is the significance of sharing a meal?", []string{"Just eating", "Building relationships", "Saving money", "Following rules"}, 1, "Sharing meals builds relationships and community bonds in Rwandan culture."),
		},
		"advanced": {
			q("cult_201", "What does 'Mwaramutse' literally mean?", []string{"Good morning", "May you have a good day", "Rise well", "Sleep well"}, 2, "'Mwaramutse' literally means 'rise well' or 'wake up well'."),
			q("cult_202", "What does showing respect to elders demonstrate in Rwandan culture?", []string{"Fear", "Good upbringing", "Weakness", "Formality"}, 1, "Respecting elders shows good upbringing and cultural values."),
		},
	}},
	"pronunciation": {flat: []model.QuizQuestion{
		q("pron_001", "How many syllables are in 'Mwaramutse'?", []string{"3", "4", "5", "6"}, 1, "'Mwaramutse' has 4 syllables: Mwa-ra-mu-tse."),
		q("pron_002", "Which sound is emphasized in 'Muraho'?", []string{"Mu-", "-ra-", "-ho", "All equally"}, 3, "In Kinyarwanda, syllables are generally pronounced with equal emphasis."),
		q("pron_003", "What is the correct pronunciation of 'Kinyarwanda'?", []string{"Kin-yar-wan-da", "Ki-nya-rwan-da", "Ki-nYA-rwan-da", "Ki-nya-RWAN-da"}, 1, "The correct pronunciation is Ki-nya-rwan-da with relatively equal stress."),
		q("pron_004", "How is the 'ny' sound pronounced in Kinyarwanda?", []string{"Like 'ni'", "Like 'nee'", "Like 'ñ' in Spanish", "Like 'knee'"}, 2, "The 'ny' in Kinyarwanda is pronounced like 'ñ' in Spanish."),
		q("pron_005", "How do you pronounce the 'rw' in 'Kinyarwanda'?", []string{"Like 'r' then 'w'", "Like 'row'", "Like a rolled 'r' with 'w'", "Like 'ru'"}, 2, "The 'rw' is pronounced as a rolled 'r' followed by 'w'."),
		q("pron_006", "What is the correct way to pronounce 'Igikoni'?", []string{"I-gi-ko-ni", "Igi-ko-ni", "I-giko-ni", "Igiko-ni"}, 0, "'Igikoni' is pronounced I-gi-ko-ni with equal syllable stress."),
	}},
	"numbers": {flat: []model.QuizQuestion{
		q("num_001", "How do you say 'one' in Kinyarwanda?", []string{"Rimwe", "Kabiri", "Gatatu", "Kane"}, 0, "'Rimwe' means 'one' in Kinyarwanda."),
		q("num_002", "What is 'Icumi' in English?", []string{"Five", "Seven", "Ten", "Twenty"}, 2, "'Icumi' means 'ten' in Kinyarwanda."),
		q("num_003", "How do you say 'five' in Kinyarwanda?", []string{"Kane", "Gatanu", "Gatandatu", "Karindwi"}, 1, "'Gatanu' means 'five' in Kinyarwanda."),
		q("num_004", "What is 'Kabiri' in English?", []string{"One", "Two", "Three", "Four"}, 1, "'Kabiri' means 'two' in Kinyarwanda."),
		q("num_005", "How do you say 'three' in Kinyarwanda?", []string{"Gatatu", "Kane", "Gatanu", "Gatandatu"}, 0, "'Gatatu' means 'three' in Kinyarwanda."),
		q("num_006", "What is 'Kane' in English?", []string{"Three", "Four", "Five", "Six"}, 1, "'Kane' means 'four' in Kinyarwanda."),
		q("num_007", "How do you say 'six' in Kinyarwanda?", []string{"Gatanu", "Gatandatu", "Karindwi", "Umunani"}, 1, "'Gatandatu' means 'six' in Kinyarwanda."),
		q("num_008", "What is 'Karindwi' in English?", []string{"Six", "Seven", "Eight", "Nine"}, 1, "'Karindwi' means 'seven' in Kinyarwanda."),
		q("num_009", "How do you say 'eight' in Kinyarwanda?", []string{"Karindwi", "Umunani", "Icyenda", "Icumi"}, 1, "'Umunani' means 'eight' in Kinyarwanda."),
		q("num_010", "What is 'Icyenda' in English?", []string{"Eight", "Nine", "Ten", "Eleven"}, 1, "'Icyenda' means 'nine' in Kinyarwanda."),
	}},
}

func q(id, question string, options []string, correct int, explanation string) model.QuizQuestion {
	return model.QuizQuestion{
		ID:            id,
		Question:      question,
		Options:       options,
		CorrectAnswer: correct,
		Explanation:   explanation,
	}
}
