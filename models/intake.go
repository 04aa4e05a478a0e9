package models

// Intake is the orthopaedic intake questionnaire stored on a patient. Form
// keys follow the names used by the profile page.
type Intake struct {
	DominantHand         Flag   `json:"dominantHand" bson:"dominantHand" form:"dominantHand"`
	XRays                Flag   `json:"xRays" bson:"xRays" form:"xRays"`
	PrimaryPhysicianName string `json:"primaryPhysicianName" bson:"primaryPhysicianName" form:"primaryPhysicianName"`
	ClinicName           string `json:"clinicName" bson:"clinicName" form:"clinicName"`
	LatexAllergy         Flag   `json:"latexAllergy" bson:"latexAllergy" form:"latexAllergy"`

	BodyPart              BodyPart  `json:"body_part" bson:"body_part"`
	HowLongAgoDidItStart  Duration  `json:"howLongAgoDidItStart" bson:"howLongAgoDidItStart"`
	ProblemLikeThisBefore Flag      `json:"haveYouHadAProblemLikeThisBefore" bson:"haveYouHadAProblemLikeThisBefore" form:"problemLikeThisBefore"`
	Injuries              Injuries  `json:"injuries" bson:"injuries"`
	PainRating            int       `json:"painRating" bson:"painRating" form:"painRating" binding:"omitempty,min=1,max=10"`
	Quality               Quality   `json:"quality" bson:"quality"`
	ThePainIs             string    `json:"thePainIs" bson:"thePainIs" form:"thePainIs"`
	WakeYou               Flag      `json:"wakeYou" bson:"wakeYou" form:"wakeYou"`
	Symptoms              Symptoms  `json:"symptoms" bson:"symptoms"`
	Other                 string    `json:"other" bson:"other" form:"other"`
	Treatment             Treatment `json:"treatment" bson:"treatment"`

	Medications     string `json:"medications" bson:"medications" form:"medications"`
	AllergicToMedic Flag   `json:"allergicToMedic" bson:"allergicToMedic" form:"allergicToMedic"`
	Reaction        string `json:"reaction" bson:"reaction" form:"reaction"`
	SeenInTheER     Flag   `json:"seenInTheER" bson:"seenInTheER" form:"seenInTheER"`
	WhichER         string `json:"whichER" bson:"whichER" form:"whichER"`
	ERVisit         Flag   `json:"erVisit" bson:"erVisit" form:"erVisit"`
	WhoSawYouInER   string `json:"whoSawYouInER" bson:"whoSawYouInER" form:"whoSawYouInER"`
	OtherScan       string `json:"otherScan" bson:"otherScan" form:"otherScan"`
	HadSurgery      Flag   `json:"hadSurgery" bson:"hadSurgery" form:"hadSurgery"`
	Procedure1      string `json:"procedure1" bson:"procedure1" form:"procedure1"`
	Surgeon1        string `json:"surgeon1" bson:"surgeon1" form:"surgeon1"`
	City1           string `json:"city1" bson:"city1" form:"city1"`
	Date1           string `json:"date1" bson:"date1" form:"date1"`
	Procedure2      string `json:"procedure2" bson:"procedure2" form:"procedure2"`
	Surgeon2        string `json:"surgeon2" bson:"surgeon2" form:"surgeon2"`
	City2           string `json:"city2" bson:"city2" form:"city2"`
	Date2           string `json:"date2" bson:"date2" form:"date2"`

	WorkStatus   WorkStatus   `json:"workStatus" bson:"workStatus"`
	LastWorkDate string       `json:"lastWorkDate" bson:"lastWorkDate" form:"lastWorkDate"`
	PriorProblem PriorProblem `json:"priorProblem" bson:"priorProblem"`
	OtherJoints  OtherJoints  `json:"otherJoints" bson:"otherJoints"`

	HIVPositive         Flag   `json:"hivPositive" bson:"hivPositive" form:"hivPositive"`
	Diabetic            Flag   `json:"diabetic" bson:"diabetic" form:"diabetic"`
	DietNone            Flag   `json:"dietNone" bson:"dietNone" form:"dietNone"`
	BloodThinners       Flag   `json:"bloodThinners" bson:"bloodThinners" form:"bloodThinners"`
	WhichOne            string `json:"whichOne" bson:"whichOne" form:"whichOne"`
	PastSurgicalHistory string `json:"pastSurgicalHistory" bson:"pastSurgicalHistory" form:"pastSurgicalHistory"`
	Anesthesia          Flag   `json:"anesthesia" bson:"anesthesia" form:"anesthesia"`
	AnesthesiaExplain   string `json:"anesthesiaExplain" bson:"anesthesiaExplain" form:"anesthesiaExplain"`
	Hospitalizations    string `json:"hospitalizations" bson:"hospitalizations" form:"hospitalizations"`
	HeartAttackYear     string `json:"heartAttackYear" bson:"heartAttackYear" form:"heartAttackYear"`
	BloodClotsYear      string `json:"bloodClotsYear" bson:"bloodClotsYear" form:"bloodClotsYear"`
	CancerLocation      string `json:"cancerlocation" bson:"cancerlocation" form:"cancerlocation"`
	AntiInflammatories  string `json:"antiInflammatories" bson:"antiInflammatories" form:"antiInflammatories"`
	DirectRelatives     string `json:"directRelatives" bson:"directRelatives" form:"directRelatives"`
	SameCondition       Flag   `json:"sameCondition" bson:"sameCondition" form:"sameCondition"`
	Tobacco             Flag   `json:"tobacco" bson:"tobacco" form:"tobacco"`
	PacksPerDay         string `json:"packsPerDay" bson:"packsPerDay" form:"packsPerDay"`
	AlcoholUse          Flag   `json:"alcoholUse" bson:"alcoholUse" form:"alcoholUse"`
	Daily               Flag   `json:"daily" bson:"daily" form:"daily"`
	AlcoholPerWeek      string `json:"alcoholPerWeek" bson:"alcoholPerWeek" form:"alcoholPerWeek"`
	MaritalStatus       string `json:"maritalStatus" bson:"maritalStatus" form:"maritalStatus"`
	PeopleLiveWith      string `json:"peopleLiveWith" bson:"peopleLiveWith" form:"peopleLiveWith"`
	MaritalHistory      string `json:"maritalHistory" bson:"maritalHistory" form:"maritalHistory"`
	Occupation          string `json:"occupation" bson:"occupation" form:"occupation"`
	Employer            string `json:"employer" bson:"employer" form:"employer"`
	WorkingPlan         Flag   `json:"workingPlan" bson:"workingPlan" form:"workingPlan"`
}

type BodyPart struct {
	RightShoulder Flag `json:"rightShoulder" bson:"rightShoulder" form:"rightShoulder"`
	LeftShoulder  Flag `json:"leftShoulder" bson:"leftShoulder" form:"leftShoulder"`
	RightElbow    Flag `json:"rightElbow" bson:"rightElbow" form:"rightElbow"`
	LeftElbow     Flag `json:"leftElbow" bson:"leftElbow" form:"leftElbow"`
	RightWrist    Flag `json:"rightWrist" bson:"rightWrist" form:"rightWrist"`
	LeftWrist     Flag `json:"leftWrist" bson:"leftWrist" form:"leftWrist"`
	RightHand     Flag `json:"rightHand" bson:"rightHand" form:"rightHand"`
	LeftHand      Flag `json:"leftHand" bson:"leftHand" form:"leftHand"`
	RightKnee     Flag `json:"rightKnee" bson:"rightKnee" form:"rightKnee"`
	LeftKnee      Flag `json:"leftKnee" bson:"leftKnee" form:"leftKnee"`
	RightAnkle    Flag `json:"rightAnkle" bson:"rightAnkle" form:"rightAnkle"`
	LeftAnkle     Flag `json:"leftAnkle" bson:"leftAnkle" form:"leftAnkle"`
	RightFoot     Flag `json:"rightFoot" bson:"rightFoot" form:"rightFoot"`
	LeftFoot      Flag `json:"leftFoot" bson:"leftFoot" form:"leftFoot"`
	Neck          Flag `json:"neck" bson:"neck" form:"neck"`
	Back          Flag `json:"back" bson:"back" form:"Back"`
}

type Duration struct {
	Days   string `json:"days" bson:"days" form:"days"`
	Weeks  string `json:"weeks" bson:"weeks" form:"weeks"`
	Months string `json:"months" bson:"months" form:"months"`
	Years  string `json:"years" bson:"years" form:"years"`
}

type Injuries struct {
	MainGroup string       `json:"main_group" bson:"main_group" form:"outerGroup" binding:"omitempty,oneof='NO INJURY' INJURY 'INJURY AT WORK' 'WORK RELATED' 'AUTO ACCIDENT'"`
	Nested    InjuryDetail `json:"nested_group_1" bson:"nested_group_1"`
}

type InjuryDetail struct {
	InputType  string        `json:"input_type" bson:"input_type" form:"nestedGroup1" binding:"omitempty,oneof=gradual sudden accident sport lift twist fall bend pull reach"`
	Additional InjuryInputs `json:"additional_inputs" bson:"additional_inputs"`
}

type InjuryInputs struct {
	Sport   string `json:"sport_input" bson:"sport_input" form:"injurySport"`
	School  string `json:"school_input" bson:"school_input" form:"injurySchool"`
	Date1   string `json:"date_input1" bson:"date_input1" form:"injuryDate1"`
	Date2   string `json:"date_input2" bson:"date_input2" form:"injuryDate2"`
	Date3   string `json:"date_input3" bson:"date_input3" form:"injuryDate3"`
	Date4   string `json:"date_input4" bson:"date_input4" form:"injuryDate4"`
	Comment string `json:"comment_input" bson:"comment_input" form:"message"`
}

type Quality struct {
	Sharp     Flag `json:"sharp" bson:"sharp" form:"sharp"`
	Dull      Flag `json:"dull" bson:"dull" form:"dull"`
	Stabbing  Flag `json:"stabbing" bson:"stabbing" form:"stabbing"`
	Throbbing Flag `json:"throbbing" bson:"throbbing" form:"throbbing"`
	Aching    Flag `json:"aching" bson:"aching" form:"aching"`
	Burning   Flag `json:"burning" bson:"burning" form:"burning"`
}

type Symptoms struct {
	Swelling                           Flag   `json:"swelling" bson:"swelling" form:"swelling"`
	Bruises                            Flag   `json:"bruises" bson:"bruises" form:"bruises"`
	Numbness                           Flag   `json:"numbness" bson:"numbness" form:"numbness"`
	Tingling                           Flag   `json:"tingling" bson:"tingling" form:"tingling"`
	Weakness                           Flag   `json:"weakness" bson:"weakness" form:"weakness"`
	GivingWay                          Flag   `json:"givingWay" bson:"givingWay" form:"givingWay"`
	LockingCatching                    Flag   `json:"lockingCatching" bson:"lockingCatching" form:"lockingCatching"`
	Heartburn                          Flag   `json:"heartburn" bson:"heartburn" form:"heartburn"`
	Nausea                             Flag   `json:"nausea" bson:"nausea" form:"nausea"`
	BloodInStool                       Flag   `json:"bloodInStool" bson:"bloodInStool" form:"bloodInStool"`
	LiverDisease                       Flag   `json:"liverDisease" bson:"liverDisease" form:"liverDisease"`
	ThyroidDisease                     Flag   `json:"thyroidDisease" bson:"thyroidDisease" form:"thyroidDisease"`
	HeatOrColdIntolerance              Flag   `json:"heatOrColdIntolerance" bson:"heatOrColdIntolerance" form:"heatOrColdIntolerance"`
	WeightLoss                         Flag   `json:"weightLoss" bson:"weightLoss" form:"weightLoss"`
	LossOfAppetite                     Flag   `json:"lossOfAppetite" bson:"lossOfAppetite" form:"lossOfAppetite"`
	KidneyProblems                     Flag   `json:"kidneyProblems" bson:"kidneyProblems" form:"kidneyProblems"`
	EasyBruising                       Flag   `json:"easyBruising" bson:"easyBruising" form:"easyBruising"`
	TroubleSwallowing                  Flag   `json:"troubleSwallowing" bson:"troubleSwallowing" form:"troubleSwallowing"`
	BlurredVision                      Flag   `json:"blurredVision" bson:"blurredVision" form:"blurredVision"`
	DoubleVision                       Flag   `json:"doubleVision" bson:"doubleVision" form:"doubleVision"`
	VisionLoss                         Flag   `json:"visionLoss" bson:"visionLoss" form:"visionLoss"`
	HearingLoss                        Flag   `json:"hearingLoss" bson:"hearingLoss" form:"hearingLoss"`
	Hoarseness                         Flag   `json:"hoarseness" bson:"hoarseness" form:"hoarseness"`
	ChestPain                          Flag   `json:"chestPain" bson:"chestPain" form:"chestPain"`
	Palpitations                       Flag   `json:"palpitations" bson:"palpitations" form:"palpitations"`
	ChronicCough                       Flag   `json:"chronicCough" bson:"chronicCough" form:"chronicCough"`
	ShortnessOfBreath                  Flag   `json:"shortnessOfBreath" bson:"shortnessOfBreath" form:"shortnessOfBreath"`
	PainfulUrination                   Flag   `json:"painfulUrination" bson:"painfulUrination" form:"painfulUrination"`
	BloodInUrine                       Flag   `json:"bloodInUrine" bson:"bloodInUrine" form:"bloodInUrine"`
	FrequentRashes                     Flag   `json:"frequentRashes" bson:"frequentRashes" form:"frequentRashes"`
	Lumps                              Flag   `json:"lumps" bson:"lumps" form:"lumps"`
	SkinUlcers                         Flag   `json:"skinUlcers" bson:"skinUlcers" form:"skinUlcers"`
	Psoriasis                          Flag   `json:"psoriasis" bson:"psoriasis" form:"psoriasis"`
	Headaches                          Flag   `json:"headaches" bson:"headaches" form:"headaches"`
	Dizziness                          Flag   `json:"dizziness" bson:"dizziness" form:"dizziness"`
	Seizures                           Flag   `json:"seizures" bson:"seizures" form:"seizures"`
	Depression                         Flag   `json:"depression" bson:"depression" form:"depression"`
	DrugAlcoholAddiction               Flag   `json:"drugAlcoholAddiction" bson:"drugAlcoholAddiction" form:"drugAlcoholAddiction"`
	SleepDisorder                      Flag   `json:"sleepDisorder" bson:"sleepDisorder" form:"sleepDisorder"`
	EasyBleeding                       Flag   `json:"easyBleeding" bson:"easyBleeding" form:"easyBleeding"`
	Anemia                             Flag   `json:"anemia" bson:"anemia" form:"anemia"`
	Year1                              string `json:"year1" bson:"year1" form:"year1"`
	Year2                              string `json:"year2" bson:"year2" form:"year2"`
	Year3                              string `json:"year3" bson:"year3" form:"year3"`
	Year4                              string `json:"year4" bson:"year4" form:"year4"`
	Year5                              string `json:"year5" bson:"year5" form:"year5"`
	Year6                              string `json:"year6" bson:"year6" form:"year6"`
	Year7                              string `json:"year7" bson:"year7" form:"year7"`
	Year8                              string `json:"year8" bson:"year8" form:"year8"`
	Year9                              string `json:"year9" bson:"year9" form:"year9"`
	Year10                             string `json:"year10" bson:"year10" form:"year10"`
	Year11                             string `json:"year11" bson:"year11" form:"year11"`
	Year12                             string `json:"year12" bson:"year12" form:"year12"`
	SymptomsDescribe                   string `json:"symptomsDescribe" bson:"symptomsDescribe" form:"symptomsDescribe"`
	SmokingRisk                        Flag   `json:"smokingRisk" bson:"smokingRisk" form:"smokingRisk"`
	GettingBetter                      Flag   `json:"gettingBetter" bson:"gettingBetter" form:"gettingBetter"`
	GettingWorse                       Flag   `json:"gettingWorse" bson:"gettingWorse" form:"gettingWorse"`
	Unchanged                          Flag   `json:"unchanged" bson:"unchanged" form:"unchanged"`
	Standing                           Flag   `json:"standing" bson:"standing" form:"standing"`
	Walking                            Flag   `json:"walking" bson:"walking" form:"walking"`
	Lifting                            Flag   `json:"lifting" bson:"lifting" form:"lifting"`
	Exercise                           Flag   `json:"exercise" bson:"exercise" form:"exercise"`
	Twisting                           Flag   `json:"twisting" bson:"twisting" form:"twisting"`
	LyingInBed                         Flag   `json:"lyingInBed" bson:"lyingInBed" form:"lyingInBed"`
	Bending                            Flag   `json:"bending" bson:"bending" form:"bending"`
	Squatting                          Flag   `json:"squatting" bson:"squatting" form:"squatting"`
	Kneeling                           Flag   `json:"kneeling" bson:"kneeling" form:"kneeling"`
	Stairs                             Flag   `json:"stairs" bson:"stairs" form:"stairs"`
	Sitting                            Flag   `json:"sitting" bson:"sitting" form:"sitting"`
	Coughing                           Flag   `json:"coughing" bson:"coughing" form:"coughing"`
	Sneezing                           Flag   `json:"sneezing" bson:"sneezing" form:"sneezing"`
	Rest                               Flag   `json:"restt" bson:"restt" form:"rest"`
	Elevation                          Flag   `json:"elevation" bson:"elevation" form:"elevation"`
	Heat                               Flag   `json:"heat" bson:"heat" form:"heat"`
	Ice                                Flag   `json:"ice" bson:"ice" form:"ice"`
	MRI                                Flag   `json:"mri" bson:"mri" form:"mRI"`
	CatScan                            Flag   `json:"catScan" bson:"catScan" form:"catScan"`
	BoneScan                           Flag   `json:"boneScan" bson:"boneScan" form:"boneScan"`
	NerveTest                          Flag   `json:"nerveTest" bson:"nerveTest" form:"nerveTest"`
	Insulin                            Flag   `json:"insulin" bson:"insulin" form:"insulin"`
	OralMeds                           Flag   `json:"oralMeds" bson:"oralMeds" form:"oralMeds"`
	Diet                               Flag   `json:"diet" bson:"diet" form:"diet"`
	HeartAttack                        Flag   `json:"heartAttack" bson:"heartAttack" form:"heartAttack"`
	HighBloodPressure                  Flag   `json:"highBloodPressure" bson:"highBloodPressure" form:"highBloodPressure"`
	BloodClots                         Flag   `json:"bloodClots" bson:"bloodClots" form:"bloodClots"`
	Stroke                             Flag   `json:"stroke" bson:"stroke" form:"stroke"`
	HeartFailure                       Flag   `json:"heartFailure" bson:"heartFailure" form:"heartFailure"`
	AnkleSwelling                      Flag   `json:"ankleSwelling" bson:"ankleSwelling" form:"ankleSwelling"`
	KidneyFailure                      Flag   `json:"kidneyfailure" bson:"kidneyfailure" form:"kidneyfailure"`
	Cancer                             Flag   `json:"cancer" bson:"cancer" form:"cancer"`
	Stomachache                        Flag   `json:"stomachache" bson:"stomachache" form:"stomachache"`
	IDoNotHaveAny                      Flag   `json:"iDoNotHaveAny" bson:"iDoNotHaveAny" form:"iDoNotHaveAny"`
	DirectRelativesDiabetes            Flag   `json:"directRelativesDiabetes" bson:"directRelativesDiabetes" form:"directRelativesDiabetes"`
	DirectRelativesHighBloodPressure   Flag   `json:"directRelativesHighBloodPressure" bson:"directRelativesHighBloodPressure" form:"directRelativesHighBloodPressure"`
	DirectRelativesRheumatoidArthritis Flag   `json:"directRelativesRheumatoidArthritis" bson:"directRelativesRheumatoidArthritis" form:"directRelativesRheumatoidArthritis"`
	Student                            Flag   `json:"student" bson:"student" form:"student"`
}

type Treatment struct {
	Injection       Flag `json:"injection" bson:"injection" form:"injection"`
	Brace           Flag `json:"brace" bson:"brace" form:"brace"`
	PhysicalTherapy Flag `json:"physicalTherapy" bson:"physicalTherapy" form:"physicalTherapy"`
	CaneCrutch      Flag `json:"caneCrutch" bson:"caneCrutch" form:"caneCrutch"`
}

type WorkStatus struct {
	Regular    Flag `json:"regular" bson:"regular" form:"regular"`
	LightDuty  Flag `json:"lightDuty" bson:"lightDuty" form:"lightDuty"`
	NotWorking Flag `json:"notWorking" bson:"notWorking" form:"notWorking"`
	Disabled   Flag `json:"disabled" bson:"disabled" form:"disabled"`
	Retired    Flag `json:"retired" bson:"retired" form:"retired"`
	IsStudent  Flag `json:"isStudent" bson:"isStudent" form:"isStudent"`
}

type PriorProblem struct {
	HasPriorProblem Flag   `json:"hasPriorProblem" bson:"hasPriorProblem" form:"priorProblem"`
	Description     string `json:"description" bson:"description" form:"priorProblemDescribe"`
}

type OtherJoints struct {
	MorningStiffness    Flag   `json:"morningStiffness" bson:"morningStiffness" form:"morningStiffness"`
	JointPain           Flag   `json:"jointPain" bson:"jointPain" form:"jointPain"`
	BackPain            Flag   `json:"backPain" bson:"backPain" form:"backPain"`
	Gout                Flag   `json:"gout" bson:"gout" form:"gout"`
	RheumatoidArthritis Flag   `json:"rheumatoidArthritis" bson:"rheumatoidArthritis" form:"rheumatoidArthritis"`
	PriorFracture       Flag   `json:"priorFracture" bson:"priorFracture" form:"priorFracture"`
	PriorFractureBone   string `json:"priorFractureBone" bson:"priorFractureBone" form:"priorFractureBone"`
}
