package storage

import "quizbank/backend/models"

// SampleQuestions is the starter bank written on first startup.
func SampleQuestions() []models.Question {
	return []models.Question{
		{Question: "What is the capital of Japan?", Options: []string{"Osaka", "Kyoto", "Tokyo", "Nagoya"}, CorrectAnswer: 2, Category: "Geography", Difficulty: models.DifficultyEasy},
		{Question: "What is 2 + 2 × 2?", Options: []string{"6", "8", "4", "10"}, CorrectAnswer: 0, Category: "Math", Difficulty: models.DifficultyEasy},
		{Question: "What is the chemical formula of water?", Options: []string{"H2O", "CO2", "O2", "N2"}, CorrectAnswer: 0, Category: "Science", Difficulty: models.DifficultyEasy},
		{Question: "What is the highest mountain in the world?", Options: []string{"Mount Fuji", "Everest", "K2", "Denali"}, CorrectAnswer: 1, Category: "Geography", Difficulty: models.DifficultyMedium},
		{Question: "Who was the first Prime Minister of Japan?", Options: []string{"Ito Hirobumi", "Yamagata Aritomo", "Katsura Taro", "Saionji Kinmochi"}, CorrectAnswer: 0, Category: "History", Difficulty: models.DifficultyMedium},
		{Question: "Roughly how fast does light travel?", Options: []string{"300,000 km/s", "200,000 km/s", "400,000 km/s", "100,000 km/s"}, CorrectAnswer: 0, Category: "Science", Difficulty: models.DifficultyHard},
		{Question: "In which year was JavaScript created?", Options: []string{"1995", "2000", "1990", "2005"}, CorrectAnswer: 0, Category: "Technology", Difficulty: models.DifficultyMedium},
		{Question: "What is the largest planet in the solar system?", Options: []string{"Earth", "Mars", "Jupiter", "Saturn"}, CorrectAnswer: 2, Category: "Science", Difficulty: models.DifficultyEasy},
		{Question: "What is the currency of Japan?", Options: []string{"Yen", "Dollar", "Won", "Yuan"}, CorrectAnswer: 0, Category: "General", Difficulty: models.DifficultyEasy},
		{Question: "How many days are in a non-leap year?", Options: []string{"364", "365", "366", "360"}, CorrectAnswer: 1, Category: "General", Difficulty: models.DifficultyEasy},
		{Question: "What is Earth's natural satellite?", Options: []string{"The Sun", "The Moon", "Venus", "Mars"}, CorrectAnswer: 1, Category: "Science", Difficulty: models.DifficultyEasy},
		{Question: "What is the longest river in Japan?", Options: []string{"Tone", "Shinano", "Ishikari", "Yodo"}, CorrectAnswer: 1, Category: "Geography", Difficulty: models.DifficultyMedium},
		{Question: "What does HTML stand for?", Options: []string{"Hyper Text Markup Language", "High Tech Modern Language", "Home Tool Markup Language", "Hyperlink and Text Markup Language"}, CorrectAnswer: 0, Category: "Technology", Difficulty: models.DifficultyMedium},
		{Question: "Which country has the largest population?", Options: []string{"India", "China", "United States", "Indonesia"}, CorrectAnswer: 0, Category: "Geography", Difficulty: models.DifficultyMedium},
		{Question: "What is pi approximately equal to?", Options: []string{"3.14", "2.71", "1.41", "1.73"}, CorrectAnswer: 0, Category: "Math", Difficulty: models.DifficultyEasy},
		{Question: "What is the Japanese national flag called?", Options: []string{"Nisshoki", "Hinomaru-ki", "Kyokujitsu-ki", "Sakura-ki"}, CorrectAnswer: 0, Category: "General", Difficulty: models.DifficultyMedium},
		{Question: "How many colors are in the Olympic rings?", Options: []string{"5", "6", "7", "4"}, CorrectAnswer: 0, Category: "General", Difficulty: models.DifficultyEasy},
		{Question: "Which is the largest prefecture in Japan by area?", Options: []string{"Hokkaido", "Iwate", "Nagano", "Niigata"}, CorrectAnswer: 0, Category: "Geography", Difficulty: models.DifficultyMedium},
	}
}
