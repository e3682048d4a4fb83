package conversation

// Static reply texts. Content, not logic: edit freely without touching the
// state machine.

const menuText = `Willkommen im Studio! 💪
Bitte wähle eine Option:

1️⃣ Fitness
2️⃣ Physiotherapie
3️⃣ Reha-Sport
4️⃣ Termin vereinbaren

(0 = zurück zum Menü)`

const invalidChoiceText = "Das habe ich leider nicht verstanden."

const fitnessPrompt = `Super, Fitness! 🏋️
Was ist dein Ziel?

A) Abnehmen
B) Kraft/Training
C) Ausdauer`

const fitnessConfirm = "Danke! Wir melden uns mit einem passenden Trainingsangebot. Zurück zum Menü (0)."

const physioPrompt = `Physiotherapie 🙌
Hast du ein Rezept?

1) Ja
2) Nein`

const physioConfirm = "Danke! Unser Physio-Team meldet sich bei dir. Zurück zum Menü (0)."

const rehaPrompt = `Reha-Sport 🩺
Um welchen Bereich geht es?

1) Rücken
2) Knie
3) Schulter`

const rehaConfirm = "Danke! Wir melden uns wegen deines Reha-Kurses. Zurück zum Menü (0)."

const terminPrompt = `Terminwunsch 📅
Schreib uns einfach in einer Nachricht deinen Wunschtermin und worum es geht.`

const terminConfirm = "Vielen Dank! 🙏 Wir bestätigen deinen Termin so schnell wie möglich."
