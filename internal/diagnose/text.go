package diagnose

const defaultPlantName = "votre plante"

const (
	titleWatering    = "Analyse de l'arrosage :"
	titleEnvironment = "Analyse de l'environnement :"
	titlePests       = "Ravageurs et maladies :"
	titlePlan        = "Plan d'action :"
)

const (
	headerHealthy = "la plante semble globalement en bonne santé."
	headerWarning = "la plante montre des signes de stress qui demandent votre attention."
	headerDanger  = "la plante est en mauvais état et nécessite une intervention rapide."
)

const (
	wateringFine     = "L'arrosage ne semble pas poser de problème."
	wateringOver     = "Des feuilles jaunes qui tombent juste après un arrosage indiquent un excès d'eau : les racines manquent probablement d'oxygène."
	wateringUnder    = "Le dernier arrosage remonte à une semaine ou plus : le dessèchement et la chute des feuilles indiquent un manque d'eau."
	wateringYellow   = "Le jaunissement des feuilles peut venir d'un arrosage irrégulier ou d'un mauvais drainage."
	wateringDropping = "La chute des feuilles traduit souvent un stress hydrique, par excès ou par manque d'eau."
	wateringDry      = "Des feuilles sèches signalent un manque d'eau ou un air trop sec."
)

const (
	envSun         = "L'exposition directe au soleil peut brûler le feuillage : les taches brunes ou le jaunissement en sont des signes typiques."
	envLowLight    = "Le manque de lumière ralentit la croissance de la plante."
	envCold        = "La température est trop basse pour la plupart des plantes d'intérieur."
	envColdLeaves  = "Le froid explique probablement l'affaissement ou le jaunissement des feuilles."
	envHeat        = "La chaleur accélère l'évaporation et augmente les besoins en eau."
	envHeatDry     = "Elle contribue sans doute au dessèchement des feuilles."
	envFluctuating = "Les variations de température stressent la plante : éloignez-la des radiateurs, climatiseurs et courants d'air."
	envFine        = "La lumière et la température semblent adaptées."
)

const (
	pestInsects       = "Des insectes ravageurs sont présents sur la plante."
	pestInsectsDamage = "Ils sont probablement responsables des dégâts visibles sur le feuillage."
	pestInspect       = "Inspectez le dessous des feuilles et les tiges pour identifier le ravageur (pucerons, cochenilles, araignées rouges)."
	pestMold          = "La présence de moisissures ou de champignons indique un excès d'humidité."
	pestMoldRecent    = "L'arrosage récent a pu favoriser leur développement."
)

const (
	stepReduceWatering   = "Réduisez la fréquence d'arrosage et laissez sécher le terreau en surface avant d'arroser à nouveau."
	stepCheckDrainage    = "Vérifiez que le pot est percé et que l'eau s'écoule correctement."
	stepIncreaseWatering = "Augmentez la fréquence d'arrosage en arrosant abondamment dès que le terreau est sec en surface."
	stepHeatWatering     = "Adaptez l'arrosage à la chaleur et à l'ensoleillement en vérifiant le terreau plus souvent."
	stepIndirectLight    = "Déplacez la plante vers un endroit lumineux mais à l'abri du soleil direct."
	stepBrighterSpot     = "Rapprochez la plante d'une fenêtre ou d'un endroit plus lumineux."
	stepTreatInsects     = "Traitez la plante avec un savon insecticide doux ou de l'huile de neem."
	stepIsolate          = "Isolez la plante pour éviter la propagation aux plantes voisines."
	stepAirflow          = "Améliorez la circulation de l'air et retirez les parties atteintes."
	stepDryFoliage       = "Réduisez l'arrosage et évitez de mouiller le feuillage."
	stepKeepRoutine      = "Continuez votre routine d'entretien actuelle."
	stepKeepObserving    = "Continuez à observer régulièrement la plante pour détecter tout changement."
	stepSchedule         = "Établissez un calendrier d'arrosage régulier."
	stepCheckLight       = "Vérifiez que l'exposition lumineuse convient à cette plante."
	planUrgent           = "Cette plante nécessite une attention urgente : agissez sans attendre."
)
