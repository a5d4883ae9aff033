package engine

// bankEntry pairs a canned prompt with its four option texts. The first text
// is the correct answer; the synthesizer shuffles placement per question.
type bankEntry struct {
	Prompt  string
	Options [4]string
}

// questionBank indexes canned prompt/option sets by subject. Static content
// data, kept out of the generation logic so it can be swapped or localized
// without touching the synthesizer.
var questionBank = map[string][]bankEntry{
	"Gujarati": {
		{"ગુજરાતી ભાષામાં કેટલા વ્યંજનો છે?", [4]string{"33", "32", "34", "35"}},
		{"\"આમ\" શબ્દનો અર્થ શું છે?", [4]string{"આમ", "આજ", "આશ", "આય"}},
		{"ગુજરાતી વર્ણમાળામાં કયો અક્ષર પહેલો આવે છે?", [4]string{"અ", "આ", "ઇ", "ઈ"}},
		{"\"ઘર\" શબ્દનો બહુવચન શું છે?", [4]string{"ઘરો", "ઘરે", "ઘરની", "ઘરને"}},
		{"ગુજરાતી ભાષાના કવિ નર્મદાશંકર દવે કયા નામથી પ્રખ્યાત છે?", [4]string{"નર્મદ", "દલપતરામ", "ઝવેરચંદ", "ગુનવંતરાય"}},
	},
	"Hindi": {
		{"हिंदी वर्णमाला में कितने स्वर हैं?", [4]string{"11", "12", "13", "14"}},
		{"\"पुस्तक\" शब्द का बहुवचन क्या है?", [4]string{"पुस्तकें", "पुस्तकों", "पुस्तक", "पुस्तका"}},
		{"हिंदी में कितने व्यंजन हैं?", [4]string{"33", "34", "35", "36"}},
		{"\"स्कूल\" शब्द का हिंदी अनुवाद क्या है?", [4]string{"विद्यालय", "शिक्षालय", "पाठशाला", "स्कूल"}},
		{"हिंदी भाषा की लिपि कौन सी है?", [4]string{"देवनागरी", "ब्राह्मी", "खरोष्ठी", "गुरुमुखी"}},
	},
	"English": {
		{"What is the plural of \"child\"?", [4]string{"children", "childs", "childrens", "child"}},
		{"Which word is a noun: \"run\", \"quickly\", \"book\", \"beautiful\"?", [4]string{"book", "run", "quickly", "beautiful"}},
		{"What is the past tense of \"go\"?", [4]string{"went", "gone", "goed", "go"}},
		{"Which sentence is correct: \"I am go\" or \"I am going\"?", [4]string{"I am going", "I am go", "I going", "I go"}},
		{"What is the opposite of \"hot\"?", [4]string{"cold", "warm", "cool", "freezing"}},
	},
	"Social Science": {
		{"Who was the first President of India?", [4]string{"Dr. Rajendra Prasad", "Jawaharlal Nehru", "Sardar Patel", "Dr. Ambedkar"}},
		{"Which is the largest state in India by area?", [4]string{"Rajasthan", "Madhya Pradesh", "Maharashtra", "Uttar Pradesh"}},
		{"What is the capital of Gujarat?", [4]string{"Gandhinagar", "Ahmedabad", "Vadodara", "Surat"}},
		{"Which river is known as the \"Ganga of the South\"?", [4]string{"Kaveri", "Godavari", "Krishna", "Tungabhadra"}},
		{"In which year did India gain independence?", [4]string{"1947", "1948", "1946", "1949"}},
	},
	"Environmental Studies": {
		{"What should we do to save water?", [4]string{"Turn off taps when not in use", "Waste water", "Leave taps running", "Use more water"}},
		{"Which gas is essential for breathing?", [4]string{"Oxygen", "Carbon Dioxide", "Nitrogen", "Hydrogen"}},
		{"What happens when we cut down too many trees?", [4]string{"Soil erosion", "More oxygen", "Better climate", "Cleaner air"}},
		{"Which is a renewable source of energy?", [4]string{"Solar energy", "Coal", "Petroleum", "Natural gas"}},
		{"What is the main cause of air pollution?", [4]string{"Vehicle emissions", "Trees", "Rain", "Wind"}},
	},
	"Computer": {
		{"What does CPU stand for?", [4]string{"Central Processing Unit", "Computer Processing Unit", "Central Program Unit", "Computer Program Unit"}},
		{"Which key is used to delete text to the right of cursor?", [4]string{"Delete", "Backspace", "Enter", "Shift"}},
		{"What is the full form of RAM?", [4]string{"Random Access Memory", "Read Access Memory", "Random Available Memory", "Read Available Memory"}},
		{"Which software is used to create presentations?", [4]string{"PowerPoint", "Word", "Excel", "Paint"}},
		{"What does WWW stand for?", [4]string{"World Wide Web", "World Web Wide", "Wide World Web", "Web World Wide"}},
	},
	"Physics": {
		{"What is the unit of force?", [4]string{"Newton", "Joule", "Watt", "Pascal"}},
		{"Which law states that every action has an equal and opposite reaction?", [4]string{"Newton's Third Law", "Newton's First Law", "Newton's Second Law", "Law of Gravity"}},
		{"What is the speed of light in vacuum?", [4]string{"3 × 10⁸ m/s", "3 × 10⁶ m/s", "3 × 10⁹ m/s", "3 × 10⁷ m/s"}},
		{"Which type of energy is stored in a stretched spring?", [4]string{"Potential energy", "Kinetic energy", "Thermal energy", "Chemical energy"}},
		{"What is the SI unit of electric current?", [4]string{"Ampere", "Volt", "Ohm", "Watt"}},
	},
	"Chemistry": {
		{"What is the chemical formula of table salt?", [4]string{"NaCl", "NaCl₂", "Na₂Cl", "NaCl₃"}},
		{"Which gas makes up most of Earth's atmosphere?", [4]string{"Nitrogen", "Oxygen", "Carbon Dioxide", "Argon"}},
		{"What is the pH of pure water?", [4]string{"7", "6", "8", "9"}},
		{"Which element has the symbol 'O'?", [4]string{"Oxygen", "Osmium", "Oganesson", "Olgamium"}},
		{"What is the process of converting liquid to gas called?", [4]string{"Evaporation", "Condensation", "Sublimation", "Deposition"}},
	},
	"Biology": {
		{"What is the powerhouse of the cell?", [4]string{"Mitochondria", "Nucleus", "Ribosome", "Chloroplast"}},
		{"Which organ pumps blood throughout the body?", [4]string{"Heart", "Lungs", "Liver", "Kidney"}},
		{"What is the process by which plants make their food?", [4]string{"Photosynthesis", "Respiration", "Digestion", "Circulation"}},
		{"Which system is responsible for breathing?", [4]string{"Respiratory system", "Circulatory system", "Digestive system", "Nervous system"}},
		{"What is the smallest unit of life?", [4]string{"Cell", "Tissue", "Organ", "Organism"}},
		{"Which national park in Gujarat is famous for Asiatic lions?", [4]string{"Gir National Park", "Kaziranga", "Jim Corbett", "Bandipur"}},
		{"Which bird is the state bird of Gujarat?", [4]string{"Greater Flamingo", "Peacock", "Eagle", "Parrot"}},
	},
	"Art": {
		{"Which traditional Gujarati art form involves creating intricate patterns with colored powders during festivals?", [4]string{"Rangoli", "Painting", "Sculpture", "Pottery"}},
		{"What is the traditional folk dance of Gujarat performed during Navratri?", [4]string{"Garba", "Bharatanatyam", "Kathak", "Odissi"}},
		{"Which festival in Gujarat is famous for its colorful kite flying?", [4]string{"Uttarayan", "Diwali", "Holi", "Dussehra"}},
		{"What is the traditional embroidery work of Kutch that uses mirrors and colorful threads?", [4]string{"Kutch embroidery", "Phulkari", "Chikankari", "Zardozi"}},
		{"What is the traditional musical instrument commonly used in Gujarati folk music and Garba?", [4]string{"Dhol", "Tabla", "Sitar", "Flute"}},
	},
	"Moral Education": {
		{"What is the most important value taught by Mahatma Gandhi?", [4]string{"Truth and Non-violence", "Wealth", "Power", "Fame"}},
		{"How should we treat our elders according to Indian culture?", [4]string{"With respect and care", "Casually", "Indifferently", "Rudely"}},
		{"What does \"Ahimsa\" mean in Gandhian philosophy?", [4]string{"Non-violence", "Truth", "Peace", "Love"}},
		{"What is the meaning of \"Satyamev Jayate\"?", [4]string{"Truth alone triumphs", "Money is power", "Success matters most", "Popularity counts"}},
		{"What does \"Seva\" mean in the context of serving our community?", [4]string{"Service to others", "Personal gain", "Self-interest", "Individual success"}},
	},
	"Physical Education": {
		{"How many players are there in a cricket team?", [4]string{"11", "9", "13", "15"}},
		{"What is the national sport of India?", [4]string{"Hockey", "Cricket", "Football", "Tennis"}},
		{"How many minutes of physical activity should children do daily?", [4]string{"60 minutes", "30 minutes", "120 minutes", "15 minutes"}},
		{"Which sport is played with a shuttlecock?", [4]string{"Badminton", "Tennis", "Table tennis", "Volleyball"}},
		{"Which ancient practice from India combines physical postures, breathing, and meditation?", [4]string{"Yoga", "Meditation", "Prayer", "Sleep"}},
	},
	"Sanskrit": {
		{"What is the meaning of \"Namaste\" in Sanskrit?", [4]string{"I bow to you", "Good morning", "Thank you", "Goodbye"}},
		{"What does \"Dharma\" mean in Sanskrit?", [4]string{"Righteousness", "Wealth", "Power", "Fame"}},
		{"What is the Sanskrit word for \"Peace\"?", [4]string{"Shanti", "Sukha", "Dukha", "Karma"}},
		{"Which ancient text is written in Sanskrit?", [4]string{"Vedas", "Bible", "Quran", "Torah"}},
		{"What does \"Guru\" mean in Sanskrit?", [4]string{"Teacher", "Student", "Parent", "Friend"}},
	},
	"Computer Science": {
		{"What does CPU stand for in computer science?", [4]string{"Central Processing Unit", "Computer Processing Unit", "Central Program Unit", "Computer Program Unit"}},
		{"What is the full form of HTML?", [4]string{"HyperText Markup Language", "High Tech Modern Language", "Home Tool Markup Language", "Hyperlink Text Markup Language"}},
		{"Which device is used to input data into a computer?", [4]string{"Keyboard", "Monitor", "Speaker", "Printer"}},
		{"What is the purpose of RAM in a computer?", [4]string{"Temporary storage", "Permanent storage", "Display", "Input"}},
		{"Which software is used to create presentations?", [4]string{"PowerPoint", "Calculator", "Notepad", "Paint"}},
	},
	"Accountancy": {
		{"What is the basic equation of accounting?", [4]string{"Assets = Liabilities + Capital", "Assets = Liabilities - Capital", "Assets = Capital - Liabilities", "Assets = Liabilities × Capital"}},
		{"Which account shows the financial position of a business?", [4]string{"Balance Sheet", "Income Statement", "Cash Flow", "Trial Balance"}},
		{"Which principle states that expenses should be matched with revenues?", [4]string{"Matching Principle", "Going Concern", "Consistency", "Materiality"}},
		{"What is the purpose of a trial balance?", [4]string{"Check accuracy", "Show profit", "Calculate tax", "Prepare budget"}},
		{"Which financial statement shows the profit or loss of a business over a period?", [4]string{"Income Statement", "Balance Sheet", "Cash Flow", "Trial Balance"}},
	},
	"Business Studies": {
		{"What is the main objective of any business?", [4]string{"Profit maximization", "Social service", "Entertainment", "Competition"}},
		{"Which type of business organization has limited liability?", [4]string{"Company", "Partnership", "Sole proprietorship", "Cooperative"}},
		{"What is the role of marketing in business?", [4]string{"Promote products", "Manufacture goods", "Provide services", "Manage finances"}},
		{"Which type of business is owned by a single person?", [4]string{"Sole proprietorship", "Partnership", "Company", "Cooperative"}},
		{"Which principle of management emphasizes unity of command?", [4]string{"Unity of Command", "Division of Work", "Scalar Chain", "Esprit de Corps"}},
	},
	"Economics": {
		{"What is the study of how societies use scarce resources called?", [4]string{"Economics", "Sociology", "Psychology", "Political Science"}},
		{"Which economic system is based on supply and demand?", [4]string{"Market economy", "Command economy", "Traditional economy", "Mixed economy"}},
		{"Which factor determines the price of a product in the market?", [4]string{"Supply and demand", "Government", "Weather", "Luck"}},
		{"What is the meaning of \"Inflation\" in economics?", [4]string{"Rise in prices", "Fall in prices", "No change", "Economic growth"}},
		{"Which type of economy is found in most countries today?", [4]string{"Mixed economy", "Market economy", "Command economy", "Traditional economy"}},
	},
	"Statistics": {
		{"What is the average of a set of numbers called?", [4]string{"Mean", "Median", "Mode", "Range"}},
		{"Which measure shows the middle value in a data set?", [4]string{"Median", "Mean", "Mode", "Range"}},
		{"Which type of graph is used to show trends over time?", [4]string{"Line graph", "Bar graph", "Pie chart", "Histogram"}},
		{"Which measure shows how spread out the data is?", [4]string{"Standard deviation", "Mean", "Median", "Mode"}},
		{"What is the meaning of \"Mode\" in statistics?", [4]string{"Most frequent value", "Average value", "Middle value", "Highest value"}},
	},
	"History": {
		{"Who founded the Sabarmati Ashram?", [4]string{"Mahatma Gandhi", "Sardar Patel", "Jawaharlal Nehru", "Subhas Chandra Bose"}},
		{"In which year did India gain independence?", [4]string{"1947", "1942", "1950", "1930"}},
		{"Who is known as the Iron Man of India?", [4]string{"Sardar Vallabhbhai Patel", "Jawaharlal Nehru", "B. R. Ambedkar", "Mahatma Gandhi"}},
		{"What was the significance of the Dandi March?", [4]string{"Salt Satyagraha from Sabarmati to Dandi", "Non-cooperation in Ahmedabad", "Champaran Satyagraha", "Kheda Satyagraha"}},
		{"Which ancient port in Gujarat is known for its role in maritime trade?", [4]string{"Lothal", "Dwarka", "Surat", "Bhavnagar"}},
	},
	"Geography": {
		{"Which is the largest state in India by area?", [4]string{"Rajasthan", "Madhya Pradesh", "Maharashtra", "Uttar Pradesh"}},
		{"What is the capital of Gujarat?", [4]string{"Gandhinagar", "Ahmedabad", "Vadodara", "Surat"}},
		{"Which river flows through Gujarat and is considered sacred?", [4]string{"Narmada", "Ganga", "Yamuna", "Krishna"}},
		{"Which is the highest peak in India?", [4]string{"Mount Everest", "K2", "Kangchenjunga", "Lhotse"}},
		{"Which ocean lies to the west of India?", [4]string{"Arabian Sea", "Bay of Bengal", "Indian Ocean", "Pacific Ocean"}},
	},
	"Political Science": {
		{"What is the form of government in India?", [4]string{"Democracy", "Monarchy", "Dictatorship", "Oligarchy"}},
		{"Who is the head of the state in India?", [4]string{"President", "Prime Minister", "Governor", "Chief Minister"}},
		{"What is the role of the Parliament in democracy?", [4]string{"Make laws", "Enforce laws", "Interpret laws", "Execute laws"}},
		{"Which fundamental right ensures freedom of speech?", [4]string{"Right to Freedom", "Right to Equality", "Right to Education", "Right to Religion"}},
		{"What is the role of the judiciary in democracy?", [4]string{"Interpret laws", "Make laws", "Enforce laws", "Execute laws"}},
	},
	"Sociology": {
		{"What is the study of human society called?", [4]string{"Sociology", "Psychology", "Anthropology", "Political Science"}},
		{"Which institution plays a major role in socialization?", [4]string{"Family", "School", "Media", "Government"}},
		{"What is the role of family in society?", [4]string{"Socialization", "Education", "Entertainment", "Competition"}},
		{"Which concept refers to the unequal distribution of resources in society?", [4]string{"Social inequality", "Social mobility", "Social change", "Social control"}},
		{"Which institution provides education to children?", [4]string{"School", "Family", "Media", "Government"}},
	},
	"Psychology": {
		{"What is the study of human mind and behavior called?", [4]string{"Psychology", "Sociology", "Anthropology", "Philosophy"}},
		{"Which part of the brain controls memory?", [4]string{"Hippocampus", "Cerebellum", "Medulla", "Pons"}},
		{"Which theory explains human development stages?", [4]string{"Piaget's theory", "Freud's theory", "Erikson's theory", "Maslow's theory"}},
		{"What is the meaning of \"Stress\" in psychology?", [4]string{"Mental pressure", "Physical pain", "Happiness", "Excitement"}},
		{"Which method is used to study human behavior?", [4]string{"Observation", "Guessing", "Dreaming", "Imagining"}},
	},
}

// Arts shares the Art bank.
func init() {
	questionBank["Arts"] = questionBank["Art"]
}
